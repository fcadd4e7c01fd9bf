package repositories

import (
	"errors"
	"fmt"

	"lavka/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetOrCreate returns the user's cart, lazily creating an empty one.
func (r *GORMCartRepository) GetOrCreate(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Products").First(&cart, "user_id = ?", userID).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}

	cart = models.Cart{ID: uuid.New().String(), UserID: userID}
	if err := r.db.Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// AddProduct appends a product reference to the cart's join table.
func (r *GORMCartRepository) AddProduct(cart *models.Cart, product *models.Product) error {
	if err := r.db.Model(cart).Association("Products").Append(product); err != nil {
		return fmt.Errorf("failed to add product %s to cart %s: %w", product.ID, cart.ID, err)
	}
	return nil
}

// RemoveProduct deletes a product reference from the cart's join table.
func (r *GORMCartRepository) RemoveProduct(cart *models.Cart, product *models.Product) error {
	if err := r.db.Model(cart).Association("Products").Delete(product); err != nil {
		return fmt.Errorf("failed to remove product %s from cart %s: %w", product.ID, cart.ID, err)
	}
	return nil
}
