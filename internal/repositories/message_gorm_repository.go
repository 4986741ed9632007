package repositories

import (
	"context"
	"errors"
	"fmt"

	"messageboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{
		db: db,
	}
}

// FindAll retrieves all messages in insertion order. Messages sharing a
// timestamp are ordered by ID.
func (r *GORMMessageRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	messages := []models.Message{}
	if err := r.db.WithContext(ctx).Order("created_at asc, id asc").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get all messages: %w", err)
	}
	return messages, nil
}

// FindByID retrieves a single message by its ID.
func (r *GORMMessageRepository) FindByID(ctx context.Context, id string) (*models.Message, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	var message models.Message
	if err := r.db.WithContext(ctx).First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("message with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get message by ID %s: %w", id, err)
	}
	return &message, nil
}

// Create inserts a new message, assigning it an ID.
func (r *GORMMessageRepository) Create(ctx context.Context, message *models.Message) error {
	if message.Author != "" {
		if err := checkUUID(message.Author); err != nil {
			return fmt.Errorf("author: %w", err)
		}
	}
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// Update applies the supplied fields and returns the stored result.
func (r *GORMMessageRepository) Update(ctx context.Context, id string, update models.MessageUpdate) (*models.Message, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	fields := map[string]interface{}{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Body != nil {
		fields["body"] = *update.Body
	}
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	res := r.db.WithContext(ctx).Model(&models.Message{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("message with ID %s: %w", id, ErrNotFound)
	}
	return r.FindByID(ctx, id)
}

// Delete deletes a message by its ID.
func (r *GORMMessageRepository) Delete(ctx context.Context, id string) error {
	if err := checkUUID(id); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(&models.Message{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("message with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteByTitles removes every message whose title is in titles.
func (r *GORMMessageRepository) DeleteByTitles(ctx context.Context, titles ...string) (int64, error) {
	if len(titles) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("title IN ?", titles).Delete(&models.Message{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete messages by title: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func checkUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	return nil
}
