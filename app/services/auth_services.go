package services

import (
	"time"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/auth"
	"github.com/shashiranjanraj/storefront/pkg/event"
)

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 8

// AuthService owns authentication and user account management.
type AuthService struct {
	users  *repositories.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users *repositories.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SignUpInput is the user registration payload.
type SignUpInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,max=255"`
	Role     string `json:"role"     validate:"nullable,in=ADMIN,CUSTOMER"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput is a partial account update; empty fields are left alone.
type UpdateUserInput struct {
	Email    string `json:"email"    validate:"nullable,email"`
	Name     string `json:"name"     validate:"nullable,max=255"`
	Role     string `json:"role"     validate:"nullable,in=ADMIN,CUSTOMER"`
	Password string `json:"password"`
}

// LogIn verifies the credentials and issues an access token. The stored
// role is embedded in the token, so role changes only apply on re-login.
func (s *AuthService) LogIn(email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.User{}, "", apperr.NotFoundWrap("user", err)
		}
		return models.User{}, "", apperr.Internal("look up user", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return models.User{}, "", apperr.Internal("issue token", err)
	}

	now := time.Now()
	if err := s.users.TouchLastLogin(user.ID, now); err != nil {
		return models.User{}, "", apperr.Internal("record last login", err)
	}
	user.LastLogin = &now

	return user, token, nil
}

// SignUp registers a new account. Only the hash of the password is stored.
func (s *AuthService) SignUp(input SignUpInput) (models.User, error) {
	if len(input.Password) < minPasswordLen {
		return models.User{}, apperr.ErrWeakPassword
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return models.User{}, apperr.Internal("hash password", err)
	}

	role := input.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		Email:    input.Email,
		Name:     input.Name,
		Role:     role,
		Password: hash,
		Status:   models.StatusActive,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, apperr.Internal("create user", err)
	}

	event.Fire(event.UserRegistered, user)
	return user, nil
}

// UpdateUser applies a partial account update. A new password is re-checked
// against the length rule and re-hashed before storage.
func (s *AuthService) UpdateUser(id uint, input UpdateUserInput) (models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.User{}, apperr.NotFoundWrap("user", err)
		}
		return models.User{}, apperr.Internal("look up user", err)
	}

	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Password != "" {
		if len(input.Password) < minPasswordLen {
			return models.User{}, apperr.ErrWeakPassword
		}
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return models.User{}, apperr.Internal("hash password", err)
		}
		user.Password = hash
	}

	if err := s.users.Save(&user); err != nil {
		return models.User{}, apperr.Internal("update user", err)
	}
	return user, nil
}

// ChangeUserStatus moves an account to ACTIVE, SUSPENDED or DELETED.
// Accounts are never hard-deleted.
func (s *AuthService) ChangeUserStatus(id uint, status string) (models.User, error) {
	if !models.ValidUserStatus(status) {
		return models.User{}, apperr.Domainf("unknown user status: %s", status)
	}

	user, err := s.users.FindByID(id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.User{}, apperr.NotFoundWrap("user", err)
		}
		return models.User{}, apperr.Internal("look up user", err)
	}

	user.Status = status
	if err := s.users.Save(&user); err != nil {
		return models.User{}, apperr.Internal("update user status", err)
	}
	return user, nil
}
