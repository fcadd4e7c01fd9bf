package services

import (
	"fmt"

	"lavka/internal/models"
	"lavka/internal/repositories"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// ProductUpdate carries a partial catalog update; nil fields are left
// unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Img         *string
	Price       *int64
}

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Products []models.Product `json:"products"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
	Total    int64            `json:"total"`
}

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns one page of the catalog. Page numbers start at 1;
// out-of-range inputs are clamped rather than rejected.
func (s *ProductService) ListProducts(page, perPage int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	products, total, err := s.repo.List((page-1)*perPage, perPage)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return &ProductPage{
		Products: products,
		Page:     page,
		PerPage:  perPage,
		Total:    total,
	}, nil
}

// CreateProduct persists a new product and returns it with its ID set.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct applies a partial update and returns the updated product.
func (s *ProductService) UpdateProduct(id string, update ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Img != nil {
		product.Img = *update.Img
	}
	if update.Price != nil {
		product.Price = *update.Price
	}

	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
