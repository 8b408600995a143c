package repositories

import (
	"carservice/internal/models"
)

// ServiceRepository defines the interface for catalog data access.
// The catalog is read-only through the API; Create exists for seeding.
type ServiceRepository interface {
	GetAll() ([]models.Service, error)
	// GetByID returns (nil, nil) when no entry matches: missing catalog
	// entries are an empty result, not an error.
	GetByID(id string) (*models.Service, error)
	Create(service *models.Service) error
}
