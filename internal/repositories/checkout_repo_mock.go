package repositories

import (
	"sync"
	"time"

	"carservice/internal/models"

	"github.com/google/uuid"
)

// MockCheckoutRepository is an in-memory implementation of CheckoutRepository.
type MockCheckoutRepository struct {
	checkouts map[string]models.Checkout
	mu        sync.RWMutex
}

// NewMockCheckoutRepository creates a new instance of MockCheckoutRepository.
func NewMockCheckoutRepository() *MockCheckoutRepository {
	return &MockCheckoutRepository{
		checkouts: make(map[string]models.Checkout),
	}
}

// GetByEmail returns all checkouts owned by the given email.
func (r *MockCheckoutRepository) GetByEmail(email string) ([]models.Checkout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	checkoutList := make([]models.Checkout, 0)
	for _, c := range r.checkouts {
		if c.Email == email {
			checkoutList = append(checkoutList, c)
		}
	}
	return checkoutList, nil
}

// GetByID returns a checkout by its ID, or (nil, nil) when absent.
func (r *MockCheckoutRepository) GetByID(id string) (*models.Checkout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	checkout, ok := r.checkouts[id]
	if !ok {
		return nil, nil
	}
	return &checkout, nil
}

// Create adds a new checkout.
func (r *MockCheckoutRepository) Create(checkout *models.Checkout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if checkout.ID == "" {
		checkout.ID = uuid.New().String()
	}
	checkout.CreatedAt = time.Now()
	checkout.UpdatedAt = time.Now()
	r.checkouts[checkout.ID] = *checkout
	return nil
}

// UpdateStatus sets the status of a checkout and reports the count of
// documents touched.
func (r *MockCheckoutRepository) UpdateStatus(id string, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	checkout, ok := r.checkouts[id]
	if !ok {
		return 0, nil
	}
	checkout.Status = status
	checkout.UpdatedAt = time.Now()
	r.checkouts[id] = checkout
	return 1, nil
}

// Delete removes a checkout and reports the count of documents removed.
func (r *MockCheckoutRepository) Delete(id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.checkouts[id]; !ok {
		return 0, nil
	}
	delete(r.checkouts, id)
	return 1, nil
}
