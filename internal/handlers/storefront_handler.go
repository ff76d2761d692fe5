package handlers

import (
	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Category is a storefront navigation entry.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var categories = []Category{
	{ID: "men", Name: "Men's Collection"},
	{ID: "women", Name: "Women's Collection"},
	{ID: models.CategoryAll, Name: "All Products"},
}

// StorefrontHandler serves the public informational endpoints.
type StorefrontHandler struct {
	contactService *services.ContactService
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewStorefrontHandler creates a new StorefrontHandler.
func NewStorefrontHandler(contactService *services.ContactService, logger *zap.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		contactService: contactService,
		validate:       newValidator(),
		logger:         logger,
	}
}

// RegisterRoutes registers the public category and contact routes.
func (h *StorefrontHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/categories", h.HandleGetCategories)
	router.Post("/contact", h.HandleContact)
}

func (h *StorefrontHandler) HandleGetCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": categories})
}

// HandleContact accepts a contact form submission.
func (h *StorefrontHandler) HandleContact(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if handled, err := parseBody(c, &msg); handled {
		return err
	}
	if handled, err := validateStruct(c, h.validate, msg); handled {
		return err
	}
	if err := h.contactService.Submit(c.UserContext(), msg); err != nil {
		h.logger.Error("failed to submit contact message", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Thank you for contacting us!",
	})
}
