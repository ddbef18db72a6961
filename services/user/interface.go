package user

import (
	userRepo "parkwise/database/repository/user"
	"parkwise/models"
)

// AuthResponse is returned on successful login: the safe user plus a token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages accounts of every role.
type UserService interface {
	Register(user models.User) (*models.User, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetUser(id string) (*models.User, error)
	ListUsers(filter userRepo.UserFilter) ([]models.User, error)
	UpdateUser(id string, patch map[string]interface{}) (*models.User, error)
	DeleteUser(id string) error
	ToggleStatus(id string) (*models.User, error)
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
