package userRepo

import (
	"errors"

	"parkwise/models"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("user with this email already exists")

// UserFilter narrows GetAll results. Empty fields match everything.
type UserFilter struct {
	Role   string
	Status string
}

// UserRepository defines methods for user account data access. Lookups return
// (nil, nil) when no document matches.
type UserRepository interface {
	// Create inserts a new user record, enforcing email uniqueness.
	Create(user *models.User) error
	// GetByID retrieves a user by their unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by their email.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves users matching the filter.
	GetAll(filter UserFilter) ([]models.User, error)
	// Update applies a field patch and returns the updated document.
	Update(id string, patch map[string]interface{}) (*models.User, error)
	// Delete removes a user record by its ID.
	Delete(id string) error
	// TouchLastLogin stamps a successful login.
	TouchLastLogin(id string) error
}
