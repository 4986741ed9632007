package repositories

import (
	"context"

	"messageboard/internal/models"
)

// MessageRepository defines the interface for message data access.
type MessageRepository interface {
	FindAll(ctx context.Context) ([]models.Message, error)
	FindByID(ctx context.Context, id string) (*models.Message, error)
	Create(ctx context.Context, message *models.Message) error
	Update(ctx context.Context, id string, update models.MessageUpdate) (*models.Message, error)
	Delete(ctx context.Context, id string) error
	// DeleteByTitles removes every message whose title is one of titles.
	DeleteByTitles(ctx context.Context, titles ...string) (int64, error)
}
