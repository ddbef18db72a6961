package user

import (
	userRepo "parkwise/database/repository/user"
	"parkwise/models"
	"parkwise/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUser returns a user by ID.
func (s *DefaultUserService) GetUser(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundError{ID: id}
	}
	return u, nil
}

// ListUsers returns users matching the filter.
func (s *DefaultUserService) ListUsers(filter userRepo.UserFilter) ([]models.User, error) {
	return s.Repo.GetAll(filter)
}

// UpdateUser applies a profile patch. A plain-text password in the patch is
// re-hashed before it touches the store; identity fields are dropped.
func (s *DefaultUserService) UpdateUser(id string, patch map[string]interface{}) (*models.User, error) {
	delete(patch, "id")
	delete(patch, "_id")
	delete(patch, "createdAt")
	delete(patch, "passwordHash")

	if pw, ok := patch["password"].(string); ok {
		delete(patch, "password")
		if pw != "" {
			if len(pw) < 6 {
				return nil, ValidationError{Message: "Password must be at least 6 characters long"}
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
			if err != nil {
				utils.GetLogger().Error("failed to hash password", zap.Error(err))
				return nil, err
			}
			patch["passwordHash"] = string(hashed)
		}
	}

	u, err := s.Repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundError{ID: id}
	}
	return u, nil
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(id string) error {
	return s.Repo.Delete(id)
}

// ToggleStatus flips an account between active and inactive.
func (s *DefaultUserService) ToggleStatus(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundError{ID: id}
	}

	newStatus := models.UserStatusInactive
	if u.Status == models.UserStatusInactive {
		newStatus = models.UserStatusActive
	}

	updated, err := s.Repo.Update(id, map[string]interface{}{"status": newStatus})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, NotFoundError{ID: id}
	}
	return updated, nil
}
