package repositories

import (
	"carservice/internal/models"
)

// CheckoutRepository defines the interface for checkout (order) data access.
// UpdateStatus and Delete report how many documents were affected rather
// than failing on a missing id, mirroring document-store result envelopes;
// deleting an already-deleted checkout is a zero-count success.
type CheckoutRepository interface {
	GetByEmail(email string) ([]models.Checkout, error)
	GetByID(id string) (*models.Checkout, error)
	Create(checkout *models.Checkout) error
	UpdateStatus(id string, status string) (int64, error)
	Delete(id string) (int64, error)
}
