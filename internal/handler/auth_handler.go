package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tokoprima/admin-api/internal/service"
	"github.com/tokoprima/admin-api/internal/utils"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid credentials")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Login failed")
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}
