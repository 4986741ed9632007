package repositories

import (
	"context"

	"messageboard/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	DeleteByUsernames(ctx context.Context, usernames ...string) (int64, error)
}
