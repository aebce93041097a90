package service

import (
	"context"

	"storefront/internal/product"

	"github.com/stretchr/testify/mock"
)

// MockProductService adalah mock untuk interface ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductService) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, req product.ProductRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id string, req product.ProductRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
