package app

import (
	"fmt"
	"time"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the collaborators the HTTP application is built from.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Publisher services.EventPublisher // optional
	Logger    *zap.Logger
	Now       func() time.Time // optional, defaults to time.Now
}

// Services exposes the wired services for commands that need them directly.
type Services struct {
	Products *services.ProductService
	Orders   *services.OrderService
	Stats    *services.StatsService
	Auth     *services.AuthService
}

// New wires repositories, services and handlers into a Fiber app.
func New(deps Deps) (*fiber.App, *Services, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(deps.DB)
	orderRepo := repositories.NewGORMOrderRepository(deps.DB)
	wishlistRepo := repositories.NewGORMWishlistRepository(deps.DB)

	// --- Services ---
	authService, err := services.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create admin session gate: %w", err)
	}
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, deps.Publisher, logger.Named("orders"), services.OrderOptions{
		RejectOutOfStock: cfg.RejectOutOfStockOrders,
		Now:              now,
	})
	statsService := services.NewStatsService(orderRepo, cfg.Location(), now)
	contactService := services.NewContactService(deps.Publisher, logger.Named("contact"))
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService, logger.Named("products"))
	orderHandler := handlers.NewOrderHandler(orderService, logger.Named("orders"))
	adminHandler := handlers.NewAdminHandler(authService, statsService, logger.Named("admin"))
	storefrontHandler := handlers.NewStorefrontHandler(contactService, logger.Named("storefront"))
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)

	app := fiber.New(fiber.Config{
		AppName:      "Raja's Collection API",
		ErrorHandler: handlers.ErrorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(logger.Named("http")))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Raja's Collection API"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(c.UserContext(), deps.DB); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   now().Format(time.RFC3339),
		})
	})

	// --- API Routes ---
	api := app.Group("/api")
	adminOnly := middleware.AdminRequired(authService, logger.Named("auth"))

	productHandler.RegisterRoutes(api, adminOnly)
	orderHandler.RegisterRoutes(api, adminOnly)
	adminHandler.RegisterRoutes(api, adminOnly)
	storefrontHandler.RegisterRoutes(api)
	wishlistHandler.RegisterRoutes(api)

	return app, &Services{
		Products: productService,
		Orders:   orderService,
		Stats:    statsService,
		Auth:     authService,
	}, nil
}
