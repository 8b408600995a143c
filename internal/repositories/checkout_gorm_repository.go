package repositories

import (
	"fmt"

	"carservice/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCheckoutRepository is a GORM implementation of CheckoutRepository.
type GORMCheckoutRepository struct {
	db *gorm.DB
}

// NewGORMCheckoutRepository creates a new instance of GORMCheckoutRepository.
func NewGORMCheckoutRepository(db *gorm.DB) *GORMCheckoutRepository {
	return &GORMCheckoutRepository{
		db: db,
	}
}

// GetByEmail retrieves all checkouts owned by the given email.
func (r *GORMCheckoutRepository) GetByEmail(email string) ([]models.Checkout, error) {
	var checkouts []models.Checkout
	if err := r.db.Find(&checkouts, "email = ?", email).Error; err != nil {
		return nil, fmt.Errorf("failed to get checkouts for %s: %w", email, err)
	}
	return checkouts, nil
}

// GetByID retrieves a single checkout by its ID, or (nil, nil) when no
// document matches.
func (r *GORMCheckoutRepository) GetByID(id string) (*models.Checkout, error) {
	var checkout models.Checkout
	if err := r.db.First(&checkout, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get checkout by ID %s: %w", id, err)
	}
	return &checkout, nil
}

// Create inserts a new checkout document.
func (r *GORMCheckoutRepository) Create(checkout *models.Checkout) error {
	if checkout.ID == "" {
		checkout.ID = uuid.New().String()
	}
	if err := r.db.Create(checkout).Error; err != nil {
		return fmt.Errorf("failed to create checkout: %w", err)
	}
	return nil
}

// UpdateStatus sets only the status field and reports how many documents
// were modified.
func (r *GORMCheckoutRepository) UpdateStatus(id string, status string) (int64, error) {
	res := r.db.Model(&models.Checkout{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update checkout status for %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes a checkout by its ID and reports how many documents were
// deleted. A missing id yields zero, not an error.
func (r *GORMCheckoutRepository) Delete(id string) (int64, error) {
	res := r.db.Delete(&models.Checkout{}, "id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete checkout %s: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
