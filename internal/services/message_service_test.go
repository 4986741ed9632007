package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"messageboard/internal/models"
	"messageboard/internal/repositories"
	"messageboard/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMessageRepository is a mock implementation of repositories.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) FindByID(ctx context.Context, id string) (*models.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageRepository) Create(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) Update(ctx context.Context, id string, update models.MessageUpdate) (*models.Message, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) DeleteByTitles(ctx context.Context, titles ...string) (int64, error) {
	args := m.Called(ctx, titles)
	return args.Get(0).(int64), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, payload interface{}) error {
	args := m.Called(routingKey, payload)
	return args.Error(0)
}

func eventOfType(eventType, messageID string) interface{} {
	return mock.MatchedBy(func(e models.MessageEvent) bool {
		return e.Type == eventType && e.MessageID == messageID
	})
}

func TestMessageService_GetAllMessages(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMessageRepository)
	service := services.NewMessageService(mockRepo, nil)

	expected := []models.Message{
		{ID: "1", Title: "Test", Body: "random words"},
		{ID: "2", Title: "Another Test", Body: "more words"},
	}
	mockRepo.On("FindAll", ctx).Return(expected, nil).Once()

	messages, err := service.GetAllMessages(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, messages)

	// A nil slice from the repository is still returned as an empty list
	mockRepo.On("FindAll", ctx).Return(nil, nil).Once()
	messages, err = service.GetAllMessages(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)

	mockRepo.On("FindAll", ctx).Return(nil, fmt.Errorf("connection refused")).Once()
	_, err = service.GetAllMessages(ctx)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestMessageService_GetMessageByID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMessageRepository)
	service := services.NewMessageService(mockRepo, nil)

	expected := &models.Message{ID: "1", Title: "Test", Body: "random words"}
	mockRepo.On("FindByID", ctx, "1").Return(expected, nil).Once()
	message, err := service.GetMessageByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, expected, message)

	mockRepo.On("FindByID", ctx, "99").Return(nil, fmt.Errorf("message with ID 99: %w", repositories.ErrNotFound)).Once()
	message, err = service.GetMessageByID(ctx, "99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, message)
	mockRepo.AssertExpectations(t)
}

func TestMessageService_CreateMessage(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMessageRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewMessageService(mockRepo, mockPublisher)

	message := &models.Message{Title: "Another Test", Body: "random words", Author: "user-1"}
	mockRepo.On("Create", ctx, message).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Message).ID = "msg-1"
	}).Return(nil).Once()
	mockPublisher.On("Publish", models.EventMessageCreated, eventOfType(models.EventMessageCreated, "msg-1")).Return(nil).Once()

	err := service.CreateMessage(ctx, message)
	assert.NoError(t, err)
	assert.Equal(t, "msg-1", message.ID)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestMessageService_CreateMessage_Validation(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMessageRepository)
	service := services.NewMessageService(mockRepo, nil)

	err := service.CreateMessage(ctx, &models.Message{Body: "no title"})
	var validationErr *services.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "title")
	assert.NotContains(t, validationErr.Fields, "body")

	err = service.CreateMessage(ctx, &models.Message{})
	assert.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Fields, 2)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMessageService_CreateMessage_PublishFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMessageRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewMessageService(mockRepo, mockPublisher)

	message := &models.Message{Title: "Test", Body: "random words"}
	mockRepo.On("Create", ctx, message).Return(nil).Once()
	mockPublisher.On("Publish", models.EventMessageCreated, mock.Anything).Return(fmt.Errorf("channel closed")).Once()

	assert.NoError(t, service.CreateMessage(ctx, message))
	mockPublisher.AssertExpectations(t)
}

func TestMessageService_CreateMessage_StoreFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMessageRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewMessageService(mockRepo, mockPublisher)

	message := &models.Message{Title: "Test", Body: "random words"}
	mockRepo.On("Create", ctx, message).Return(fmt.Errorf("database error")).Once()

	err := service.CreateMessage(ctx, message)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestMessageService_UpdateMessage(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMessageRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewMessageService(mockRepo, mockPublisher)

	body := "different words"
	update := models.MessageUpdate{Body: &body}
	updated := &models.Message{ID: "1", Title: "Test", Body: body}

	mockRepo.On("Update", ctx, "1", update).Return(updated, nil).Once()
	mockPublisher.On("Publish", models.EventMessageUpdated, eventOfType(models.EventMessageUpdated, "1")).Return(nil).Once()

	message, err := service.UpdateMessage(ctx, "1", update)
	assert.NoError(t, err)
	assert.Equal(t, updated, message)

	mockRepo.On("Update", ctx, "99", update).Return(nil, fmt.Errorf("message with ID 99: %w", repositories.ErrNotFound)).Once()
	_, err = service.UpdateMessage(ctx, "99", update)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestMessageService_UpdateMessage_Validation(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMessageRepository)
	service := services.NewMessageService(mockRepo, nil)

	var validationErr *services.ValidationError

	_, err := service.UpdateMessage(ctx, "1", models.MessageUpdate{})
	assert.True(t, errors.As(err, &validationErr))

	empty := ""
	_, err = service.UpdateMessage(ctx, "1", models.MessageUpdate{Title: &empty})
	assert.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields, "title")

	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestMessageService_DeleteMessage(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockMessageRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewMessageService(mockRepo, mockPublisher)

	mockRepo.On("Delete", ctx, "1").Return(nil).Once()
	mockPublisher.On("Publish", models.EventMessageDeleted, eventOfType(models.EventMessageDeleted, "1")).Return(nil).Once()
	assert.NoError(t, service.DeleteMessage(ctx, "1"))

	mockRepo.On("Delete", ctx, "1").Return(fmt.Errorf("message with ID 1: %w", repositories.ErrNotFound)).Once()
	err := service.DeleteMessage(ctx, "1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestValidationError_ErrorIsStable(t *testing.T) {
	ctx := context.Background()
	service := services.NewMessageService(new(MockMessageRepository), nil)

	expected := "Validation failed: Field 'body' failed on the 'required' tag; Field 'title' failed on the 'required' tag"
	for i := 0; i < 20; i++ {
		err := service.CreateMessage(ctx, &models.Message{})
		assert.EqualError(t, err, expected)
	}
}
