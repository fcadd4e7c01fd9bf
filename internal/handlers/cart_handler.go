package handlers

import (
	"errors"
	"log"

	"lavka/internal/middleware"
	"lavka/internal/repositories"
	"lavka/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the caller's cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes, all behind the supplied auth
// middleware.
func (h *CartHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/cart", authRequired, h.HandleView)
	router.Post("/cart/:productId", authRequired, h.HandleAdd)
	router.Delete("/cart/:productId", authRequired, h.HandleRemove)
}

// HandleView returns the products in the caller's cart, creating an
// empty cart on first access.
func (h *CartHandler) HandleView(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	products, err := h.service.CartProducts(user.ID)
	if err != nil {
		log.Printf("failed to load cart for user %s: %v", user.ID, err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not load cart")
	}
	return dataResponse(c, fiber.StatusOK, products)
}

// HandleAdd puts a product into the caller's cart.
func (h *CartHandler) HandleAdd(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	if err := h.service.AddProduct(user.ID, c.Params("productId")); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "Not Found")
		}
		log.Printf("failed to add product to cart for user %s: %v", user.ID, err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not update cart")
	}
	return dataResponse(c, fiber.StatusCreated, fiber.Map{"messages": "product added to cart"})
}

// HandleRemove takes a product out of the caller's cart.
func (h *CartHandler) HandleRemove(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	if err := h.service.RemoveProduct(user.ID, c.Params("productId")); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return errorResponse(c, fiber.StatusNotFound, "Not Found")
		}
		log.Printf("failed to remove product from cart for user %s: %v", user.ID, err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not update cart")
	}
	return dataResponse(c, fiber.StatusOK, fiber.Map{"messages": "product removed from cart"})
}
