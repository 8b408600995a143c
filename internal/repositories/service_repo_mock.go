package repositories

import (
	"sync"

	"carservice/internal/models"

	"github.com/google/uuid"
)

// MockServiceRepository is an in-memory implementation of ServiceRepository.
type MockServiceRepository struct {
	services map[string]models.Service
	mu       sync.RWMutex
}

// NewMockServiceRepository creates a new instance of MockServiceRepository.
func NewMockServiceRepository() *MockServiceRepository {
	return &MockServiceRepository{
		services: make(map[string]models.Service),
	}
}

// GetAll returns all catalog entries.
func (r *MockServiceRepository) GetAll() ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	serviceList := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		serviceList = append(serviceList, s)
	}
	return serviceList, nil
}

// GetByID returns a catalog entry by its ID, or (nil, nil) when absent.
func (r *MockServiceRepository) GetByID(id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	return &service, nil
}

// Create adds a catalog entry.
func (r *MockServiceRepository) Create(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	r.services[service.ID] = *service
	return nil
}
