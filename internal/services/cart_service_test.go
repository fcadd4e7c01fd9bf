package services_test

import (
	"testing"

	"lavka/internal/models"
	"lavka/internal/repositories"
	"lavka/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a mock implementation of repositories.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetOrCreate(userID string) (*models.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) AddProduct(cart *models.Cart, product *models.Product) error {
	args := m.Called(cart, product)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveProduct(cart *models.Cart, product *models.Product) error {
	args := m.Called(cart, product)
	return args.Error(0)
}

func TestCartService_AddProduct(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCartService(cartRepo, productRepo)

	product := &models.Product{ID: "p-1", Name: "Bread", Price: 50}
	cart := &models.Cart{ID: "cart-1", UserID: "user-1"}
	productRepo.On("GetByID", "p-1").Return(product, nil).Once()
	cartRepo.On("GetOrCreate", "user-1").Return(cart, nil).Once()
	cartRepo.On("AddProduct", cart, product).Return(nil).Once()

	assert.NoError(t, service.AddProduct("user-1", "p-1"))
	cartRepo.AssertExpectations(t)
}

func TestCartService_AddProduct_UnknownProduct(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCartService(cartRepo, productRepo)

	productRepo.On("GetByID", "missing").Return(nil, repositories.ErrProductNotFound).Once()

	err := service.AddProduct("user-1", "missing")

	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	// The cart is never touched when the product does not exist.
	cartRepo.AssertNotCalled(t, "GetOrCreate", mock.Anything)
	cartRepo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
}

func TestCartService_RemoveProduct_UnknownProduct(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCartService(cartRepo, productRepo)

	productRepo.On("GetByID", "missing").Return(nil, repositories.ErrProductNotFound).Once()

	err := service.RemoveProduct("user-1", "missing")

	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	cartRepo.AssertNotCalled(t, "RemoveProduct", mock.Anything, mock.Anything)
}

func TestCartService_CartProducts_EmptyCart(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	service := services.NewCartService(cartRepo, productRepo)

	cartRepo.On("GetOrCreate", "user-1").Return(&models.Cart{ID: "cart-1", UserID: "user-1"}, nil).Once()

	products, err := service.CartProducts("user-1")

	assert.NoError(t, err)
	// Empty, not nil, so the handler serializes [] rather than null.
	assert.NotNil(t, products)
	assert.Len(t, products, 0)
}
