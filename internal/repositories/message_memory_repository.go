package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"messageboard/internal/models"

	"github.com/google/uuid"
)

// MemoryMessageRepository is an in-memory implementation of MessageRepository.
type MemoryMessageRepository struct {
	messages map[string]models.Message
	order    []string // IDs in insertion order
	mu       sync.RWMutex
}

// NewMemoryMessageRepository creates a new instance of MemoryMessageRepository.
func NewMemoryMessageRepository() *MemoryMessageRepository {
	return &MemoryMessageRepository{
		messages: make(map[string]models.Message),
	}
}

// FindAll returns all messages in insertion order.
func (r *MemoryMessageRepository) FindAll(_ context.Context) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messageList := make([]models.Message, 0, len(r.messages))
	for _, id := range r.order {
		messageList = append(messageList, r.messages[id])
	}
	return messageList, nil
}

// FindByID returns a message by its ID.
func (r *MemoryMessageRepository) FindByID(_ context.Context, id string) (*models.Message, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	message, ok := r.messages[id]
	if !ok {
		return nil, fmt.Errorf("message with ID %s: %w", id, ErrNotFound)
	}
	return &message, nil
}

// Create adds a new message.
func (r *MemoryMessageRepository) Create(_ context.Context, message *models.Message) error {
	if message.Author != "" {
		if err := checkUUID(message.Author); err != nil {
			return fmt.Errorf("author: %w", err)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	now := time.Now()
	message.CreatedAt = now
	message.UpdatedAt = now
	if _, exists := r.messages[message.ID]; !exists {
		r.order = append(r.order, message.ID)
	}
	r.messages[message.ID] = *message
	return nil
}

// Update modifies the supplied fields of an existing message.
func (r *MemoryMessageRepository) Update(_ context.Context, id string, update models.MessageUpdate) (*models.Message, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	message, ok := r.messages[id]
	if !ok {
		return nil, fmt.Errorf("message with ID %s: %w", id, ErrNotFound)
	}
	if !update.IsEmpty() {
		update.Apply(&message)
		message.UpdatedAt = time.Now()
		r.messages[id] = message
	}
	return &message, nil
}

// Delete removes a message by its ID.
func (r *MemoryMessageRepository) Delete(_ context.Context, id string) error {
	if err := checkUUID(id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[id]; !ok {
		return fmt.Errorf("message with ID %s: %w", id, ErrNotFound)
	}
	r.remove(id)
	return nil
}

// DeleteByTitles removes every message whose title is in titles.
func (r *MemoryMessageRepository) DeleteByTitles(_ context.Context, titles ...string) (int64, error) {
	match := make(map[string]bool, len(titles))
	for _, t := range titles {
		match[t] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, message := range r.messages {
		if match[message.Title] {
			r.remove(id)
			deleted++
		}
	}
	return deleted, nil
}

// remove must be called with mu held.
func (r *MemoryMessageRepository) remove(id string) {
	delete(r.messages, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}
