package services_test

import (
	"testing"

	"lavka/internal/models"
	"lavka/internal/repositories"
	"lavka/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(offset, limit int) ([]models.Product, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_ListProducts(t *testing.T) {
	repo := new(MockProductRepository)
	service := services.NewProductService(repo)

	expected := []models.Product{
		{ID: "p-1", Name: "Bread", Price: 50},
		{ID: "p-2", Name: "Milk", Price: 80},
	}
	repo.On("List", 20, 20).Return(expected, int64(42), nil).Once()

	page, err := service.ListProducts(2, 20)

	assert.NoError(t, err)
	assert.Equal(t, expected, page.Products)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 20, page.PerPage)
	assert.Equal(t, int64(42), page.Total)
}

func TestProductService_ListProducts_ClampsInputs(t *testing.T) {
	repo := new(MockProductRepository)
	service := services.NewProductService(repo)

	// page 0 and per_page 0 fall back to the first page of the default size.
	repo.On("List", 0, 20).Return([]models.Product{}, int64(0), nil).Once()

	page, err := service.ListProducts(0, 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PerPage)
	assert.NotNil(t, page.Products)
	repo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_Partial(t *testing.T) {
	repo := new(MockProductRepository)
	service := services.NewProductService(repo)

	repo.On("GetByID", "p-1").Return(&models.Product{
		ID: "p-1", Name: "Bread", Description: "rye", Img: "http://img/bread", Price: 50,
	}, nil).Once()
	repo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	newPrice := int64(65)
	product, err := service.UpdateProduct("p-1", services.ProductUpdate{Price: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, int64(65), product.Price)
	// Fields absent from the update stay untouched.
	assert.Equal(t, "Bread", product.Name)
	assert.Equal(t, "rye", product.Description)
	assert.Equal(t, "http://img/bread", product.Img)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	service := services.NewProductService(repo)

	repo.On("GetByID", "missing").Return(nil, repositories.ErrProductNotFound).Once()

	_, err := service.UpdateProduct("missing", services.ProductUpdate{})

	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	service := services.NewProductService(repo)

	repo.On("Delete", "missing").Return(repositories.ErrProductNotFound).Once()

	assert.ErrorIs(t, service.DeleteProduct("missing"), repositories.ErrProductNotFound)
}
