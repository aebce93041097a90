package backend

import (
	"context"

	"storefront/internal/order"
	"storefront/internal/product"

	"github.com/stretchr/testify/mock"
)

// MockBackend adalah mock untuk interface Backend
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) GetProducts(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockBackend) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockBackend) CreateOrder(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockBackend) TrackOrder(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockBackend) AdminLogin(ctx context.Context, creds Credentials) (*LoginResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LoginResult), args.Error(1)
}

func (m *MockBackend) GetOrders(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockBackend) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockBackend) UpdateOrderStatus(ctx context.Context, u StatusUpdate) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockBackend) CreateProduct(ctx context.Context, p product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockBackend) EditProduct(ctx context.Context, p product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockBackend) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
