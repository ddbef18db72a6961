package handlers

import (
	"net/http"

	"parkwise/models"
	usersvc "parkwise/services/user"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves login and registration.
type AuthHandler struct {
	UserService usersvc.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc usersvc.UserService) *AuthHandler {
	return &AuthHandler{UserService: svc}
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, usersvc.ValidationError{Message: "Email and password are required"})
		return
	}

	resp, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    resp.User,
		"token":   resp.Token,
		"message": "Login successful",
	})
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, usersvc.ValidationError{Message: "Invalid registration payload"})
		return
	}

	created, err := h.UserService.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    created,
		"message": "Account created successfully",
	})
}
