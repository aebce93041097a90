package repository

import (
	"context"

	"storefront/internal/order"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository adalah mock untuk OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)

	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)

	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)

	result := args.Get(0)
	if result == nil {
		return nil, args.Error(1)
	}
	return result.([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID string, statuses order.StatusPair) error {
	args := m.Called(ctx, orderID, statuses)
	return args.Error(0)
}
