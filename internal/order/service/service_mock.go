package service

import (
	"context"

	"storefront/internal/backend"
	"storefront/internal/order"
	"storefront/internal/session"

	"github.com/stretchr/testify/mock"
)

// MockOrderService adalah mock untuk OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PrepareDraft(ctx context.Context, req order.DraftRequest) (*order.DraftResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DraftResponse), args.Error(1)
}

func (m *MockOrderService) SubmitOrder(ctx context.Context, req order.SubmitOrderRequest) (*order.SubmitOrderResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.SubmitOrderResponse), args.Error(1)
}

func (m *MockOrderService) CheckPaymentProof(proof *order.PaymentProof) error {
	return m.Called(proof).Error(0)
}

func (m *MockOrderService) GetConfirmation(ctx context.Context, token string) (*order.Confirmation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Confirmation), args.Error(1)
}

func (m *MockOrderService) TrackOrder(ctx context.Context, orderID string) (*order.TrackingView, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.TrackingView), args.Error(1)
}

// MockAdminService adalah mock untuk AdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Login(ctx context.Context, creds backend.Credentials) (*backend.LoginResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.LoginResult), args.Error(1)
}

func (m *MockAdminService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockAdminService) Authorize(ctx context.Context, token string) (*session.AdminSession, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.AdminSession), args.Error(1)
}

func (m *MockAdminService) ListOrders(ctx context.Context, f order.OrderFilter) (*order.AdminOrderList, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.AdminOrderList), args.Error(1)
}

func (m *MockAdminService) GetOrder(ctx context.Context, orderID string) (*order.AdminOrderDetail, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.AdminOrderDetail), args.Error(1)
}

func (m *MockAdminService) UpdateOrderStatus(ctx context.Context, orderID string, req order.UpdateStatusRequest) (*order.AdminUpdateResult, error) {
	args := m.Called(ctx, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.AdminUpdateResult), args.Error(1)
}
