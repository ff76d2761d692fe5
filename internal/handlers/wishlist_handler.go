package handlers

import (
	"storefront/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WishlistHandler exposes the server-side wishlist.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// RegisterRoutes registers the wishlist routes. They need no session.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/:customer", h.HandleGet)
	wishlistRoutes.Put("/:customer/:productID", h.HandleAdd)
	wishlistRoutes.Delete("/:customer/:productID", h.HandleRemove)
}

func (h *WishlistHandler) HandleGet(c *fiber.Ctx) error {
	wishlist, err := h.service.Get(c.UserContext(), c.Params("customer"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wishlist)
}

func (h *WishlistHandler) HandleAdd(c *fiber.Ctx) error {
	productID, err := paramID(c, "productID")
	if err != nil {
		return respondError(c, err)
	}
	wishlist, err := h.service.Add(c.UserContext(), c.Params("customer"), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wishlist)
}

func (h *WishlistHandler) HandleRemove(c *fiber.Ctx) error {
	productID, err := paramID(c, "productID")
	if err != nil {
		return respondError(c, err)
	}
	wishlist, err := h.service.Remove(c.UserContext(), c.Params("customer"), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wishlist)
}
