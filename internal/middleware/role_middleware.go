package middleware

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tokoprima/admin-api/internal/models"
	"github.com/tokoprima/admin-api/internal/utils"
)

// UserGetter loads a user for role checks.
type UserGetter interface {
	GetByID(id int) (*models.User, error)
}

// RoleMiddleware enforces token-authenticated, role-gated access. The caller
// identity comes from a verified token claim, never from a client-supplied
// header.
type RoleMiddleware struct {
	users  UserGetter
	tokens *utils.JWTManager
}

// NewRoleMiddleware constructs a RoleMiddleware.
func NewRoleMiddleware(users UserGetter, tokens *utils.JWTManager) *RoleMiddleware {
	return &RoleMiddleware{users: users, tokens: tokens}
}

// Require returns a middleware permitting only users holding one of the given roles.
func (m *RoleMiddleware) Require(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Error(c, 401, "UNAUTHORIZED", "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(c, 401, "UNAUTHORIZED", "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := m.tokens.Validate(parts[1])
		if err != nil {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		// The role is re-read from the store so a demoted or deleted user
		// loses access before the token expires.
		user, err := m.users.GetByID(claims.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				utils.Error(c, 403, "FORBIDDEN", "User no longer exists")
			} else {
				utils.Error(c, 500, "INTERNAL_ERROR", "Failed to load user")
			}
			c.Abort()
			return
		}

		if !roleAllowed(user.Role, roles) {
			utils.Error(c, 403, "FORBIDDEN", "Role not permitted for this resource")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))
		c.Next()
	}
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
