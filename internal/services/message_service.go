package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"messageboard/internal/models"
	"messageboard/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// EventPublisher sends change events to a message broker.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// MessageService handles business logic related to messages.
type MessageService struct {
	repo      repositories.MessageRepository
	publisher EventPublisher // May be nil
	validate  *validator.Validate
}

// NewMessageService creates a new MessageService. publisher may be nil, in
// which case no events are sent.
func NewMessageService(repo repositories.MessageRepository, publisher EventPublisher) *MessageService {
	return &MessageService{
		repo:      repo,
		publisher: publisher,
		validate:  newValidator(),
	}
}

// GetAllMessages retrieves all messages.
func (s *MessageService) GetAllMessages(ctx context.Context) ([]models.Message, error) {
	messages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// GetMessageByID retrieves a single message by its ID.
func (s *MessageService) GetMessageByID(ctx context.Context, id string) (*models.Message, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateMessage validates and stores a new message. The store assigns the ID.
func (s *MessageService) CreateMessage(ctx context.Context, message *models.Message) error {
	message.ID = ""
	if err := validateStruct(s.validate, message); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	s.publish(models.EventMessageCreated, message)
	return nil
}

// UpdateMessage applies a partial update and returns the updated message.
func (s *MessageService) UpdateMessage(ctx context.Context, id string, update models.MessageUpdate) (*models.Message, error) {
	if update.IsEmpty() {
		return nil, &ValidationError{Message: "At least one of 'title' or 'body' is required"}
	}
	if err := validateStruct(s.validate, update); err != nil {
		return nil, err
	}
	message, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update message %s: %w", id, err)
	}
	s.publish(models.EventMessageUpdated, message)
	return message, nil
}

// DeleteMessage deletes a message by its ID.
func (s *MessageService) DeleteMessage(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete message %s: %w", id, err)
	}
	s.publish(models.EventMessageDeleted, &models.Message{ID: id})
	return nil
}

// publish sends an event for message. Failures are logged and never
// reported to the caller: the store write has already succeeded.
func (s *MessageService) publish(eventType string, message *models.Message) {
	if s.publisher == nil {
		return
	}
	event := models.MessageEvent{
		Type:       eventType,
		MessageID:  message.ID,
		Title:      message.Title,
		Author:     message.Author,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(eventType, event); err != nil {
		log.Printf("Warning: Failed to publish %s event for message %s: %v", eventType, message.ID, err)
	}
}
