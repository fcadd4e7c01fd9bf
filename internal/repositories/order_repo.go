package repositories

import "lavka/internal/models"

// OrderRepository defines data access for placed orders.
type OrderRepository interface {
	// CheckoutCart turns the user's cart into an order in one transaction:
	// load the cart, sum the product prices, create the order with the
	// product references copied over, then delete the cart. Returns
	// ErrCartNotFound when the user has no cart row; a cart that exists
	// but holds no products checks out with a total of zero.
	CheckoutCart(userID string) (*models.Order, error)
	// ListByUser returns every order the user has placed, products
	// preloaded, oldest first.
	ListByUser(userID string) ([]models.Order, error)
}
