package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"messageboard/internal/models"

	"github.com/google/uuid"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

// FindByID returns a user by their ID.
func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	if err := checkUUID(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

// DeleteByUsernames removes every user whose username is in usernames.
func (r *MemoryUserRepository) DeleteByUsernames(_ context.Context, usernames ...string) (int64, error) {
	match := make(map[string]bool, len(usernames))
	for _, u := range usernames {
		match[u] = true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, user := range r.users {
		if match[user.Username] {
			delete(r.users, id)
			deleted++
		}
	}
	return deleted, nil
}
