package services

import (
	"carservice/internal/models"
	"carservice/internal/repositories"
)

// CatalogService handles business logic for the read-only service catalog.
type CatalogService struct {
	repo repositories.ServiceRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ServiceRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetAllServices retrieves all catalog entries.
func (s *CatalogService) GetAllServices() ([]models.Service, error) {
	return s.repo.GetAll()
}

// GetServiceByID retrieves a single catalog entry. A missing id yields
// (nil, nil): the API reports it as an empty result, not a 404.
func (s *CatalogService) GetServiceByID(id string) (*models.Service, error) {
	return s.repo.GetByID(id)
}

// SeedService inserts a catalog entry. The catalog has no write routes, so
// this only runs from the startup seeding path.
func (s *CatalogService) SeedService(service *models.Service) error {
	return s.repo.Create(service)
}
