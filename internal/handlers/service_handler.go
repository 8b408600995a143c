package handlers

import (
	"log"

	"carservice/internal/middleware"
	"carservice/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ServiceHandler handles HTTP requests for the service catalog.
type ServiceHandler struct {
	catalog *services.CatalogService
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(catalog *services.CatalogService) *ServiceHandler {
	return &ServiceHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the catalog routes with the policy router.
func (h *ServiceHandler) RegisterRoutes(router *middleware.Router) {
	router.Add(fiber.MethodGet, "/services", h.HandleGetServices)
	router.Add(fiber.MethodGet, "/services/:id", h.HandleGetServiceByID)
}

// HandleGetServices returns all catalog entries.
func (h *ServiceHandler) HandleGetServices(c *fiber.Ctx) error {
	serviceList, err := h.catalog.GetAllServices()
	if err != nil {
		log.Printf("Error getting all services: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve services",
			"error":   err.Error(),
		})
	}
	return c.JSON(serviceList)
}

// HandleGetServiceByID returns a single catalog entry. An id that matches
// nothing yields a 200 with a null body, not a 404.
func (h *ServiceHandler) HandleGetServiceByID(c *fiber.Ctx) error {
	serviceID := c.Params("id")
	service, err := h.catalog.GetServiceByID(serviceID)
	if err != nil {
		log.Printf("Error getting service by ID %s: %v", serviceID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve service",
			"error":   err.Error(),
		})
	}
	return c.JSON(service)
}
