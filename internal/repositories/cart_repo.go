package repositories

import "lavka/internal/models"

// CartRepository defines data access for the per-user cart.
type CartRepository interface {
	// GetOrCreate returns the user's cart with products preloaded,
	// creating an empty cart on first access. Idempotent.
	GetOrCreate(userID string) (*models.Cart, error)
	// AddProduct adds a product reference to the cart. Re-adding a product
	// already in the cart is a no-op (set semantics).
	AddProduct(cart *models.Cart, product *models.Product) error
	// RemoveProduct removes a product reference from the cart. Removing a
	// product that is not in the cart is a no-op.
	RemoveProduct(cart *models.Cart, product *models.Product) error
}
