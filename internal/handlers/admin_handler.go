package handlers

import (
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminHandler serves the back office session and dashboard endpoints.
type AdminHandler struct {
	authService  *services.AuthService
	statsService *services.StatsService
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authService *services.AuthService, statsService *services.StatsService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		authService:  authService,
		statsService: statsService,
		validate:     newValidator(),
		logger:       logger,
	}
}

// RegisterRoutes registers the admin routes. adminOnly guards everything but login.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, adminOnly fiber.Handler) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Post("/login", h.HandleLogin)
	adminRoutes.Get("/stats", adminOnly, h.HandleGetStats)
}

// LoginRequest represents the request body for admin login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin checks the admin credentials and issues a session token.
func (h *AdminHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if handled, err := parseBody(c, &req); handled {
		return err
	}
	if handled, err := validateStruct(c, h.validate, req); handled {
		return err
	}

	token, expiresAt, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		h.logger.Warn("admin login failed", zap.String("username", req.Username), zap.String("ip", c.IP()))
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Login successful",
		"token":      token,
		"expires_at": expiresAt,
	})
}

// HandleGetStats returns the dashboard figures computed from the live order store.
func (h *AdminHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.statsService.GetStats(c.UserContext())
	if err != nil {
		h.logger.Error("failed to compute stats", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(stats)
}
