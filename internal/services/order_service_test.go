package services_test

import (
	"testing"

	"lavka/internal/models"
	"lavka/internal/repositories"
	"lavka/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CheckoutCart(userID string) (*models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func TestOrderService_Checkout(t *testing.T) {
	repo := new(MockOrderRepository)
	// nil broker client: checkout must still succeed, publishing skipped.
	service := services.NewOrderService(repo, nil)

	repo.On("CheckoutCart", "user-1").Return(&models.Order{
		ID: "order-1", UserID: "user-1", OrderPrice: 35,
	}, nil).Once()

	order, err := service.Checkout("user-1")

	assert.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, int64(35), order.OrderPrice)
}

func TestOrderService_Checkout_NoCart(t *testing.T) {
	repo := new(MockOrderRepository)
	service := services.NewOrderService(repo, nil)

	repo.On("CheckoutCart", "user-1").Return(nil, repositories.ErrCartNotFound).Once()

	_, err := service.Checkout("user-1")

	assert.ErrorIs(t, err, repositories.ErrCartNotFound)
}

func TestOrderService_ListOrders_Empty(t *testing.T) {
	repo := new(MockOrderRepository)
	service := services.NewOrderService(repo, nil)

	repo.On("ListByUser", "user-1").Return(nil, nil).Once()

	orders, err := service.ListOrders("user-1")

	assert.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Len(t, orders, 0)
}
