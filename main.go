package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"carservice/internal/config"
	"carservice/internal/handlers"
	"carservice/internal/middleware"
	"carservice/internal/models"
	"carservice/internal/repositories"
	"carservice/internal/services"
	"carservice/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Open the document store ---
	// The connection is the one process-scoped resource: opened once here,
	// shared by all requests, closed on shutdown. A failure here is fatal.
	db, err := openStore(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}

	if err := db.AutoMigrate(&models.Service{}, &models.Checkout{}); err != nil {
		log.Fatalf("Failed to migrate store: %v", err)
	}

	// --- RabbitMQ client (optional) ---
	// Checkout events are best-effort; the HTTP API must not depend on the
	// broker being reachable, so a connection failure only logs.
	var mqClient *rabbitmq.Client
	mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
	if err != nil {
		log.Printf("Warning: RabbitMQ unavailable, checkout events disabled: %v", err)
		mqClient = nil
	} else {
		defer mqClient.Close()
	}

	// --- Repositories ---
	serviceRepo := repositories.NewGORMServiceRepository(db)
	checkoutRepo := repositories.NewGORMCheckoutRepository(db)

	seedServices(serviceRepo)

	// --- Services ---
	var publisher services.EventPublisher
	if mqClient != nil {
		publisher = mqClient
	}
	tokenService := services.NewTokenService(cfg.JWTSecret)
	catalogService := services.NewCatalogService(serviceRepo)
	checkoutService := services.NewCheckoutService(checkoutRepo, publisher)

	app := NewApp(cfg, tokenService, catalogService, checkoutService)

	// --- Checkout event consumer ---
	if mqClient != nil {
		go func() {
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received checkout event %s (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeCheckoutEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start checkout event consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s (profile: %s)", cfg.Port, cfg.Profile)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing store connection: %v", err)
		}
	}

	log.Println("Server gracefully stopped")
}

// NewApp builds the Fiber app: CORS and request logging, the policy-gated
// API routes, and the liveness and health endpoints.
func NewApp(cfg *config.Config, tokens *services.TokenService, catalog *services.CatalogService, checkouts *services.CheckoutService) *fiber.App {
	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORSOrigins, ","),
		AllowCredentials: true,
	}))

	policy := middleware.DefaultPolicy(cfg.StrictOwnership)
	router := middleware.NewRouter(app, policy, tokens)

	handlers.NewAuthHandler(tokens, cfg.Cookie).RegisterRoutes(router)
	handlers.NewServiceHandler(catalog).RegisterRoutes(router)
	handlers.NewCheckoutHandler(checkouts, cfg.StrictOwnership).RegisterRoutes(router)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Car Service is Running in Web")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}

// openStore opens the store connection, picking the driver from the DSN:
// Postgres for the hosted profile's server DSNs, SQLite otherwise.
func openStore(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// seedServices populates an empty catalog so a fresh local store has
// something to serve.
func seedServices(repo repositories.ServiceRepository) {
	existing, err := repo.GetAll()
	if err != nil || len(existing) > 0 {
		return
	}

	catalog := []models.Service{
		{
			Title: "Full Engine Diagnostics",
			Price: 45.00,
			Img:   "https://i.ibb.co/jT7cK3R/engine.jpg",
			Facility: models.FacilityList{
				{Name: "Computerized scan", Details: "Full OBD-II fault readout with a printed report."},
				{Name: "Road test", Details: "Before and after test drive by a certified mechanic."},
			},
		},
		{
			Title: "Oil Change & Filter",
			Price: 30.00,
			Img:   "https://i.ibb.co/0s3pdnc/oil.jpg",
			Facility: models.FacilityList{
				{Name: "Synthetic oil", Details: "Manufacturer-grade synthetic oil included."},
			},
		},
		{
			Title: "Brake Inspection",
			Price: 25.00,
			Img:   "https://i.ibb.co/qNrYpJ0/brake.jpg",
			Facility: models.FacilityList{
				{Name: "Pad measurement", Details: "Pad and rotor wear measured on all four wheels."},
			},
		},
	}

	for i := range catalog {
		if err := repo.Create(&catalog[i]); err != nil {
			log.Printf("Error seeding service %s: %v", catalog[i].Title, err)
		} else {
			log.Printf("Seeded service: %s (ID: %s)", catalog[i].Title, catalog[i].ID)
		}
	}
}
