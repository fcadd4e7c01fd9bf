package services

import (
	"encoding/json"
	"log"

	"lavka/internal/models"
	"lavka/internal/repositories"
	"lavka/pkg/rabbitmq"
)

// OrderService handles checkout and order listing.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client // optional, nil when no broker is configured
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// Checkout converts the user's cart into an order. The repository runs
// the transition atomically; this layer only publishes the order.placed
// event once the transaction has committed. Publish failures are logged,
// not surfaced: the order exists either way.
func (s *OrderService) Checkout(userID string) (*models.Order, error) {
	order, err := s.orderRepo.CheckoutCart(userID)
	if err != nil {
		return nil, err
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"order_id":    order.ID,
			"user_id":     order.UserID,
			"order_price": order.OrderPrice,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("failed to marshal order event for order %s: %v", order.ID, err)
		} else if err := s.mqClient.Publish(body); err != nil {
			log.Printf("failed to publish order.placed for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// ListOrders returns every order the user has placed.
func (s *OrderService) ListOrders(userID string) ([]models.Order, error) {
	orders, err := s.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
