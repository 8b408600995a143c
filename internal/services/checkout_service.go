package services

import (
	"encoding/json"
	"fmt"
	"log"

	"carservice/internal/models"
	"carservice/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes checkout lifecycle events. Satisfied by the
// RabbitMQ client; nil disables publishing so the HTTP API never depends on
// the broker being reachable.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// CheckoutService handles business logic for checkout orders.
type CheckoutService struct {
	repo      repositories.CheckoutRepository
	publisher EventPublisher
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(repo repositories.CheckoutRepository, publisher EventPublisher) *CheckoutService {
	return &CheckoutService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetCheckoutsByEmail retrieves all checkouts owned by the given email.
func (s *CheckoutService) GetCheckoutsByEmail(email string) ([]models.Checkout, error) {
	return s.repo.GetByEmail(email)
}

// GetCheckoutByID retrieves a single checkout, or (nil, nil) when absent.
func (s *CheckoutService) GetCheckoutByID(id string) (*models.Checkout, error) {
	return s.repo.GetByID(id)
}

// CreateCheckout assigns an id, persists the checkout, and publishes a
// checkout.created event. A publish failure is logged, not surfaced: the
// order is already stored.
func (s *CheckoutService) CreateCheckout(checkout *models.Checkout) error {
	if checkout.ID == "" {
		checkout.ID = uuid.New().String()
	}
	if err := s.repo.Create(checkout); err != nil {
		return fmt.Errorf("failed to create checkout in repository: %w", err)
	}

	s.publishEvent("checkout.created", map[string]interface{}{
		"checkoutID": checkout.ID,
		"email":      checkout.Email,
		"service":    checkout.ServiceID,
		"status":     checkout.Status,
	})
	return nil
}

// UpdateStatus sets only the status field of a checkout and reports how
// many documents were modified.
func (s *CheckoutService) UpdateStatus(id string, status string) (int64, error) {
	modified, err := s.repo.UpdateStatus(id, status)
	if err != nil {
		return 0, fmt.Errorf("failed to update checkout status for %s: %w", id, err)
	}

	if modified > 0 {
		s.publishEvent("checkout.status_updated", map[string]interface{}{
			"checkoutID": id,
			"status":     status,
		})
	}
	return modified, nil
}

// DeleteCheckout removes a checkout by its ID and reports how many
// documents were deleted. Repeating a delete is a zero-count success.
func (s *CheckoutService) DeleteCheckout(id string) (int64, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete checkout %s: %w", id, err)
	}
	return deleted, nil
}

func (s *CheckoutService) publishEvent(routingKey string, event map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
