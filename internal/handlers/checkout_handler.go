package handlers

import (
	"log"

	"carservice/internal/middleware"
	"carservice/internal/models"
	"carservice/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CheckoutHandler handles HTTP requests for checkout orders.
type CheckoutHandler struct {
	service         *services.CheckoutService
	strictOwnership bool
	validate        *validator.Validate
}

// NewCheckoutHandler creates a new CheckoutHandler. With strict ownership
// enabled, deletion and status updates reject callers whose verified email
// does not own the checkout.
func NewCheckoutHandler(service *services.CheckoutService, strictOwnership bool) *CheckoutHandler {
	return &CheckoutHandler{
		service:         service,
		strictOwnership: strictOwnership,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the checkout routes with the policy router.
func (h *CheckoutHandler) RegisterRoutes(router *middleware.Router) {
	router.Add(fiber.MethodPost, "/checkouts", h.HandleCreateCheckout)
	router.Add(fiber.MethodGet, "/checkouts", h.HandleGetCheckouts)
	router.Add(fiber.MethodDelete, "/checkouts/:id", h.HandleDeleteCheckout)
	router.Add(fiber.MethodPatch, "/checkouts/:id", h.HandleUpdateStatus)
}

// HandleCreateCheckout inserts a new checkout document. The body is taken
// as-is beyond a presence check on the owner email; no identity proof is
// required at creation.
func (h *CheckoutHandler) HandleCreateCheckout(c *fiber.Ctx) error {
	var doc map[string]interface{}
	if err := c.BodyParser(&doc); err != nil {
		log.Printf("Error parsing checkout request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	checkout := models.CheckoutFromDocument(doc)
	if err := h.validate.Var(checkout.Email, "required,email"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "An owner email is required for a checkout",
		})
	}

	if err := h.service.CreateCheckout(&checkout); err != nil {
		log.Printf("Error creating checkout: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create checkout",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"acknowledged": true,
		"insertedId":   checkout.ID,
	})
}

// HandleGetCheckouts returns the checkouts owned by the query email. The
// route is gated: the verified token email must equal the query email, a
// mismatch is Forbidden rather than Unauthorized.
func (h *CheckoutHandler) HandleGetCheckouts(c *fiber.Ctx) error {
	email := c.Query("email")
	if middleware.CallerEmail(c) != email {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden Access",
		})
	}

	checkouts, err := h.service.GetCheckoutsByEmail(email)
	if err != nil {
		log.Printf("Error getting checkouts for %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve checkouts",
			"error":   err.Error(),
		})
	}
	return c.JSON(checkouts)
}

// HandleDeleteCheckout deletes a checkout by id. Deleting an id that no
// longer exists reports a zero count instead of an error.
func (h *CheckoutHandler) HandleDeleteCheckout(c *fiber.Ctx) error {
	checkoutID := c.Params("id")
	if rejected, err := h.rejectForeignOwner(c, checkoutID); rejected {
		return err
	}

	deleted, err := h.service.DeleteCheckout(checkoutID)
	if err != nil {
		log.Printf("Error deleting checkout %s: %v", checkoutID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete checkout",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"acknowledged": true,
		"deletedCount": deleted,
	})
}

// HandleUpdateStatus sets only the status field of a checkout.
func (h *CheckoutHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	checkoutID := c.Params("id")
	var updateData struct {
		Status string `json:"status" validate:"required"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for a checkout status update",
		})
	}

	if rejected, err := h.rejectForeignOwner(c, checkoutID); rejected {
		return err
	}

	modified, err := h.service.UpdateStatus(checkoutID, updateData.Status)
	if err != nil {
		log.Printf("Error updating status for checkout %s: %v", checkoutID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update checkout status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"acknowledged":  true,
		"modifiedCount": modified,
	})
}

// rejectForeignOwner enforces the owner-email match on mutation routes when
// strict ownership is enabled. Under the default policy these routes are
// ungated and the check is skipped entirely.
func (h *CheckoutHandler) rejectForeignOwner(c *fiber.Ctx, checkoutID string) (bool, error) {
	if !h.strictOwnership {
		return false, nil
	}

	checkout, err := h.service.GetCheckoutByID(checkoutID)
	if err != nil {
		log.Printf("Error loading checkout %s for ownership check: %v", checkoutID, err)
		return true, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not verify checkout ownership",
			"error":   err.Error(),
		})
	}
	if checkout != nil && checkout.Email != middleware.CallerEmail(c) {
		return true, c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden Access",
		})
	}
	return false, nil
}
