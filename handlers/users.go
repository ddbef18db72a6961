package handlers

import (
	"fmt"
	"net/http"

	userRepo "parkwise/database/repository/user"
	"parkwise/models"
	usersvc "parkwise/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler serves user management endpoints.
type UserHandler struct {
	UserService usersvc.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc usersvc.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// ListUsersHandler handles GET /api/users?role=&status=.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	filter := userRepo.UserFilter{
		Role:   c.Query("role"),
		Status: c.Query("status"),
	}

	users, err := h.UserService.ListUsers(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// GetUserHandler handles GET /api/users/:id.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	u, err := h.UserService.GetUser(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
}

// UpdateUserHandler handles PUT /api/users/:id.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, usersvc.ValidationError{Message: "Invalid update payload"})
		return
	}

	// Only admins may change privilege and account-state fields.
	if c.GetString("userRole") != models.RoleAdmin {
		delete(patch, "role")
		delete(patch, "adminLevel")
		delete(patch, "permissions")
		delete(patch, "status")
	}

	u, err := h.UserService.UpdateUser(c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u,
		"message": "User updated successfully",
	})
}

// DeleteUserHandler handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.UserService.DeleteUser(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

// ToggleStatusHandler handles POST /api/users/:id/toggle-status.
func (h *UserHandler) ToggleStatusHandler(c *gin.Context) {
	u, err := h.UserService.ToggleStatus(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	action := "deactivated"
	if u.Status == models.UserStatusActive {
		action = "activated"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u,
		"message": fmt.Sprintf("User %s successfully", action),
	})
}
