package services_test

import (
	"context"
	"errors"
	"testing"

	"messageboard/internal/models"
	"messageboard/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteByUsernames(ctx context.Context, usernames ...string) (int64, error) {
	args := m.Called(ctx, usernames)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	user := &models.User{Username: "myuser", Password: "mypassword"}
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := service.CreateUser(ctx, user)
	assert.NoError(t, err)
	// The password is stored exactly as supplied
	assert.Equal(t, "mypassword", user.Password)
	mockRepo.AssertExpectations(t)
}

func TestUserService_CreateUser_Validation(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	err := service.CreateUser(ctx, &models.User{Username: "myuser"})
	var validationErr *services.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "Password")

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_GetUserByID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	expected := &models.User{ID: "u1", Username: "myuser"}
	mockRepo.On("FindByID", ctx, "u1").Return(expected, nil).Once()

	user, err := service.GetUserByID(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, expected, user)
	mockRepo.AssertExpectations(t)
}
