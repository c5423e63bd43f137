package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tokoprima/admin-api/internal/service"
	"github.com/tokoprima/admin-api/internal/utils"
)

// UserHandler handles user CRUD HTTP endpoints.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve users")
		return
	}
	utils.Success(c, 200, "Users retrieved", users)
}

// CreateUser handles POST /v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		if errors.Is(err, utils.ErrEmailTaken) {
			utils.Error(c, 400, "EMAIL_EXISTS", "Email already exists")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create user")
		return
	}

	utils.Success(c, 200, "User created successfully", user)
}

// UpdateUser handles PATCH /v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid user ID")
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(id, &req)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.Error(c, 404, "USER_NOT_FOUND", "User not found")
			return
		}
		if errors.Is(err, utils.ErrEmailTaken) {
			utils.Error(c, 400, "EMAIL_EXISTS", "Email already exists")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update user")
		return
	}

	utils.Success(c, 200, "User updated successfully", user)
}

// DeleteUser handles DELETE /v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_ID", "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete user")
		return
	}

	utils.Success(c, 200, "User deleted successfully", nil)
}

// TouchActivity handles POST /v1/users/activity
func (h *UserHandler) TouchActivity(c *gin.Context) {
	var req struct {
		UserID int `json:"userId" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "userId is required")
		return
	}

	if err := h.userService.TouchActivity(req.UserID); err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			utils.Error(c, 404, "USER_NOT_FOUND", "User not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update activity")
		return
	}

	utils.Success(c, 200, "Activity updated", nil)
}
