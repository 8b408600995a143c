package services_test

import (
	"fmt"
	"testing"

	"carservice/internal/models"
	"carservice/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCheckoutRepository is a mock implementation of repositories.CheckoutRepository
type MockCheckoutRepository struct {
	mock.Mock
}

func (m *MockCheckoutRepository) GetByEmail(email string) ([]models.Checkout, error) {
	args := m.Called(email)
	return args.Get(0).([]models.Checkout), args.Error(1)
}

func (m *MockCheckoutRepository) GetByID(id string) (*models.Checkout, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Checkout), args.Error(1)
}

func (m *MockCheckoutRepository) Create(checkout *models.Checkout) error {
	args := m.Called(checkout)
	return args.Error(0)
}

func (m *MockCheckoutRepository) UpdateStatus(id string, status string) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCheckoutRepository) Delete(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func TestCheckoutService_CreateCheckout(t *testing.T) {
	mockRepo := new(MockCheckoutRepository)
	mockPub := new(MockEventPublisher)
	service := services.NewCheckoutService(mockRepo, mockPub)

	checkout := &models.Checkout{Email: "a@x.com", ServiceID: "oil-change", Status: "pending"}

	mockRepo.On("Create", checkout).Return(nil).Once()
	mockPub.On("Publish", "checkout.created", mock.Anything).Return(nil).Once()

	err := service.CreateCheckout(checkout)
	assert.NoError(t, err)
	assert.NotEmpty(t, checkout.ID, "an id is assigned on insert")
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestCheckoutService_CreateCheckoutSurvivesPublishFailure(t *testing.T) {
	mockRepo := new(MockCheckoutRepository)
	mockPub := new(MockEventPublisher)
	service := services.NewCheckoutService(mockRepo, mockPub)

	checkout := &models.Checkout{Email: "a@x.com"}

	mockRepo.On("Create", checkout).Return(nil).Once()
	mockPub.On("Publish", "checkout.created", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	// The order is stored; a publish failure only logs.
	err := service.CreateCheckout(checkout)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestCheckoutService_CreateCheckoutWithoutPublisher(t *testing.T) {
	mockRepo := new(MockCheckoutRepository)
	service := services.NewCheckoutService(mockRepo, nil)

	checkout := &models.Checkout{Email: "a@x.com"}
	mockRepo.On("Create", checkout).Return(nil).Once()

	err := service.CreateCheckout(checkout)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCheckoutService_UpdateStatus(t *testing.T) {
	mockRepo := new(MockCheckoutRepository)
	mockPub := new(MockEventPublisher)
	service := services.NewCheckoutService(mockRepo, mockPub)

	mockRepo.On("UpdateStatus", "chk-1", "confirmed").Return(int64(1), nil).Once()
	mockPub.On("Publish", "checkout.status_updated", mock.Anything).Return(nil).Once()

	modified, err := service.UpdateStatus("chk-1", "confirmed")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), modified)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestCheckoutService_UpdateStatusMissingIDPublishesNothing(t *testing.T) {
	mockRepo := new(MockCheckoutRepository)
	mockPub := new(MockEventPublisher)
	service := services.NewCheckoutService(mockRepo, mockPub)

	mockRepo.On("UpdateStatus", "missing", "confirmed").Return(int64(0), nil).Once()

	modified, err := service.UpdateStatus("missing", "confirmed")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), modified)
	mockRepo.AssertExpectations(t)
	mockPub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCheckoutService_DeleteCheckoutIsIdempotent(t *testing.T) {
	mockRepo := new(MockCheckoutRepository)
	service := services.NewCheckoutService(mockRepo, nil)

	mockRepo.On("Delete", "chk-1").Return(int64(1), nil).Once()
	mockRepo.On("Delete", "chk-1").Return(int64(0), nil).Once()

	deleted, err := service.DeleteCheckout("chk-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Repeating a delete reports zero documents, not an error.
	deleted, err = service.DeleteCheckout("chk-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
	mockRepo.AssertExpectations(t)
}

func TestCheckoutService_GetCheckoutsByEmail(t *testing.T) {
	mockRepo := new(MockCheckoutRepository)
	service := services.NewCheckoutService(mockRepo, nil)

	expected := []models.Checkout{
		{ID: "chk-1", Email: "a@x.com", Status: "pending"},
		{ID: "chk-2", Email: "a@x.com", Status: "confirmed"},
	}
	mockRepo.On("GetByEmail", "a@x.com").Return(expected, nil).Once()

	checkouts, err := service.GetCheckoutsByEmail("a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, expected, checkouts)
	mockRepo.AssertExpectations(t)
}
