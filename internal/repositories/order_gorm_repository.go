package repositories

import (
	"errors"
	"fmt"

	"lavka/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// CheckoutCart runs the whole cart-to-order transition inside a single
// transaction so a failure at any step rolls everything back: no order
// without its product references, no order alongside a surviving cart.
func (r *GORMOrderRepository) CheckoutCart(userID string) (*models.Order, error) {
	var order *models.Order

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Products").First(&cart, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCartNotFound
			}
			return fmt.Errorf("failed to load cart for user %s: %w", userID, err)
		}

		var total int64
		for _, product := range cart.Products {
			total += product.Price
		}

		order = &models.Order{
			ID:         uuid.New().String(),
			UserID:     userID,
			OrderPrice: total,
		}
		if err := tx.Omit("Products").Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if len(cart.Products) > 0 {
			if err := tx.Model(order).Association("Products").Append(cart.Products); err != nil {
				return fmt.Errorf("failed to attach products to order %s: %w", order.ID, err)
			}
		}

		if err := tx.Model(&cart).Association("Products").Clear(); err != nil {
			return fmt.Errorf("failed to clear cart %s: %w", cart.ID, err)
		}
		if err := tx.Delete(&cart).Error; err != nil {
			return fmt.Errorf("failed to delete cart %s: %w", cart.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListByUser returns all orders placed by the user.
func (r *GORMOrderRepository) ListByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Products").Order("created_at").Find(&orders, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user %s: %w", userID, err)
	}
	return orders, nil
}
