package repositories

import "lavka/internal/models"

// ProductRepository defines data access for catalog products.
type ProductRepository interface {
	// List returns one page of products in insertion order together with
	// the total product count.
	List(offset, limit int) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
