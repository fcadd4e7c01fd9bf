package services

import (
	"lavka/internal/models"
	"lavka/internal/repositories"
)

// CartService handles business logic for the per-user cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// CartProducts returns the products in the user's cart, creating an empty
// cart on first access.
func (s *CartService) CartProducts(userID string) ([]models.Product, error) {
	cart, err := s.cartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if cart.Products == nil {
		return []models.Product{}, nil
	}
	return cart.Products, nil
}

// AddProduct puts a product into the user's cart. The product is resolved
// first so an unknown ID fails with repositories.ErrProductNotFound before
// the cart is touched.
func (s *CartService) AddProduct(userID, productID string) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}

	cart, err := s.cartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.AddProduct(cart, product)
}

// RemoveProduct takes a product out of the user's cart. Unknown product
// IDs fail with repositories.ErrProductNotFound; a known product that is
// not in the cart is a no-op.
func (s *CartService) RemoveProduct(userID, productID string) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}

	cart, err := s.cartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.RemoveProduct(cart, product)
}
