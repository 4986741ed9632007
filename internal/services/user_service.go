package services

import (
	"context"
	"fmt"

	"messageboard/internal/models"
	"messageboard/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// UserService handles business logic related to users.
type UserService struct {
	repo     repositories.UserRepository
	validate *validator.Validate
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo:     repo,
		validate: newValidator(),
	}
}

// CreateUser validates and stores a new user. The password is stored as given.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = ""
	if err := validateStruct(s.validate, user); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}
