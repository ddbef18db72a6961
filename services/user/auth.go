package user

import (
	"errors"
	"regexp"

	userRepo "parkwise/database/repository/user"
	"parkwise/models"
	"parkwise/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Register validates and creates a new account. Vehicle details and a phone
// number are mandatory for the user role; admins and attendants register
// without them.
func (s *DefaultUserService) Register(u models.User) (*models.User, error) {
	if u.Name == "" || u.Email == "" || u.Password == "" {
		return nil, ValidationError{Message: "Name, email, and password are required"}
	}
	if len(u.Password) < 6 {
		return nil, ValidationError{Message: "Password must be at least 6 characters long"}
	}
	if !emailPattern.MatchString(u.Email) {
		return nil, ValidationError{Message: "Please enter a valid email address"}
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.Role == models.RoleUser {
		if u.VehicleNumber == "" || u.VehicleType == "" || u.Phone == "" {
			return nil, ValidationError{Message: "Vehicle information and phone number are required for users"}
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("failed to hash password", zap.Error(err))
		return nil, err
	}
	u.PasswordHash = string(hashed)
	u.Password = ""

	if err := s.Repo.Create(&u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, DuplicateEmailError{Email: u.Email}
		}
		return nil, err
	}
	return &u, nil
}

// Authenticate checks credentials, rejects inactive accounts, stamps the
// login time and issues a token. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, ValidationError{Message: "Email and password are required"}
	}

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, InvalidCredentialsError{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, InvalidCredentialsError{}
	}

	if u.Status != models.UserStatusActive {
		return nil, InactiveAccountError{Email: email}
	}

	if err := s.Repo.TouchLastLogin(u.ID); err != nil {
		// A failed login stamp should not block the login itself.
		utils.GetLogger().Warn("failed to stamp last login", zap.String("id", u.ID), zap.Error(err))
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, utils.AuthTokenTTL)
	if err != nil {
		utils.GetLogger().Error("failed to generate auth token", zap.Error(err))
		return nil, err
	}

	return &AuthResponse{User: u, Token: token}, nil
}
