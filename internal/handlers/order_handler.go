package handlers

import (
	"errors"
	"log"

	"lavka/internal/middleware"
	"lavka/internal/repositories"
	"lavka/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and order history.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes, all behind the supplied auth
// middleware.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/order", authRequired, h.HandleCheckout)
	router.Get("/order", authRequired, h.HandleList)
}

// HandleCheckout converts the caller's cart into an order. A caller with
// no cart row gets the 422 cart-is-empty envelope; a cart that exists but
// holds nothing checks out with a total of zero.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	order, err := h.service.Checkout(user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			return errorResponse(c, fiber.StatusUnprocessableEntity, "Cart is empty")
		}
		log.Printf("checkout failed for user %s: %v", user.ID, err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not place order")
	}

	return dataResponse(c, fiber.StatusCreated, fiber.Map{
		"order_id": order.ID,
		"message":  "order is processed",
	})
}

// HandleList returns every order the caller has placed.
func (h *OrderHandler) HandleList(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)
	orders, err := h.service.ListOrders(user.ID)
	if err != nil {
		log.Printf("failed to list orders for user %s: %v", user.ID, err)
		return errorResponse(c, fiber.StatusInternalServerError, "could not list orders")
	}
	return dataResponse(c, fiber.StatusOK, orders)
}
