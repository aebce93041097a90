package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/backend"
	"storefront/internal/events"
	"storefront/internal/order"
	"storefront/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type adminDeps struct {
	svc       AdminService
	backend   *backend.MockBackend
	publisher *events.MockPublisher
	sessions  *session.AdminSessions
	mr        *miniredis.Miniredis
}

func setupAdminTest(t *testing.T, policy order.TransitionPolicy) adminDeps {
	mockBackend := new(backend.MockBackend)
	mockPublisher := new(events.MockPublisher)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := session.NewAdminSessions(rdb, time.Hour)

	svc := NewAdminService(mockBackend, sessions, rdb, events.NewEmitter(mockPublisher, "storefront"), policy, zap.NewNop())
	return adminDeps{svc: svc, backend: mockBackend, publisher: mockPublisher, sessions: sessions, mr: mr}
}

func pendingOrder(id string) *order.Order {
	return &order.Order{
		OrderID:       id,
		CustomerName:  "Budi",
		TotalPrice:    100000,
		PaymentMethod: order.MethodCOD,
		PaymentStatus: order.PaymentPending,
		OrderStatus:   order.StatusPending,
	}
}

// --- TEST CASES: Login / Logout ---

func TestAdminService_LoginCreatesSession(t *testing.T) {
	d := setupAdminTest(t, nil)
	ctx := context.Background()

	creds := backend.Credentials{Username: "admin", Password: "rahasia"}
	d.backend.On("AdminLogin", mock.Anything, creds).Return(&backend.LoginResult{Token: "tok-1", Name: "Admin Toko"}, nil).Once()

	res, err := d.svc.Login(ctx, backend.Credentials{Username: " admin ", Password: "rahasia"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)

	sess, err := d.svc.Authorize(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "Admin Toko", sess.Name)

	require.NoError(t, d.svc.Logout(ctx, "tok-1"))
	_, err = d.svc.Authorize(ctx, "tok-1")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestAdminService_LoginValidationAndRejection(t *testing.T) {
	d := setupAdminTest(t, nil)
	ctx := context.Background()

	_, err := d.svc.Login(ctx, backend.Credentials{Username: "admin"})
	assert.ErrorIs(t, err, ErrCredentialsRequired)
	d.backend.AssertNotCalled(t, "AdminLogin", mock.Anything, mock.Anything)

	d.backend.On("AdminLogin", mock.Anything, mock.Anything).
		Return(nil, &backend.RejectedError{Message: "Username atau password salah"}).Once()
	_, err = d.svc.Login(ctx, backend.Credentials{Username: "admin", Password: "salah"})
	var rejected *backend.RejectedError
	assert.True(t, errors.As(err, &rejected))
	assert.Empty(t, d.mr.Keys(), "Login gagal tidak boleh membuat sesi")
}

// --- TEST CASES: ListOrders / GetOrder ---

func TestAdminService_ListOrders_StatsFromAllOrders(t *testing.T) {
	d := setupAdminTest(t, nil)

	done := pendingOrder("ORD-AAAAA2")
	done.CustomerName = "Sari"
	done.PaymentStatus = order.PaymentPaid
	done.OrderStatus = order.StatusCompleted
	d.backend.On("GetOrders", mock.Anything).Return([]order.Order{*pendingOrder("ORD-AAAAA1"), *done}, nil).Once()

	list, err := d.svc.ListOrders(context.Background(), order.OrderFilter{Search: "sari"})

	require.NoError(t, err)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "ORD-AAAAA2", list.Orders[0].OrderID)
	assert.Equal(t, order.OrderStats{Total: 2, PendingPayment: 1, Processing: 0, Completed: 1}, list.Stats)
}

func TestAdminService_GetOrder_HasOptionLists(t *testing.T) {
	d := setupAdminTest(t, nil)
	d.backend.On("GetOrder", mock.Anything, "ORD-AAAAA1").Return(pendingOrder("ORD-AAAAA1"), nil).Once()

	detail, err := d.svc.GetOrder(context.Background(), "ORD-AAAAA1")

	require.NoError(t, err)
	assert.Len(t, detail.PaymentStatusOptions, len(order.PaymentStatuses()))
	assert.Len(t, detail.OrderStatusOptions, len(order.OrderStatuses()))
}

// --- TEST CASES: UpdateOrderStatus ---

func TestAdminService_UpdateOrderStatus_RefetchesAfterUpdate(t *testing.T) {
	d := setupAdminTest(t, nil)
	ctx := context.Background()
	id := "ORD-AAAAA1"

	// Cache tracking lama harus dihapus
	require.NoError(t, d.mr.Set("track:"+id, "{}"))

	updated := pendingOrder(id)
	updated.PaymentStatus = order.PaymentPaid
	updated.OrderStatus = order.StatusProcessing

	d.backend.On("GetOrder", mock.Anything, id).Return(pendingOrder(id), nil).Once()
	d.backend.On("UpdateOrderStatus", mock.Anything, backend.StatusUpdate{
		OrderID:       id,
		PaymentStatus: order.PaymentPaid,
		OrderStatus:   order.StatusProcessing,
	}).Return(nil).Once()
	d.backend.On("GetOrder", mock.Anything, id).Return(updated, nil).Once()
	d.backend.On("GetOrders", mock.Anything).Return([]order.Order{*updated}, nil).Once()
	d.publisher.On("Publish", "orders_exchange", "order.status_updated", mock.AnythingOfType("[]uint8")).Return(nil).Once()

	res, err := d.svc.UpdateOrderStatus(ctx, id, order.UpdateStatusRequest{
		PaymentStatus: order.PaymentPaid,
		OrderStatus:   order.StatusProcessing,
	})

	require.NoError(t, err)
	assert.Equal(t, order.SeveritySuccess, res.Order.PaymentStatus.Severity)
	assert.Equal(t, []bool{true, true, false, false}, reachedSteps(res.Order.Progress))
	assert.Equal(t, 1, res.Stats.Processing)
	assert.False(t, d.mr.Exists("track:"+id))

	d.backend.AssertExpectations(t)
	d.publisher.AssertExpectations(t)
}

func TestAdminService_UpdateOrderStatus_UnknownOrder(t *testing.T) {
	d := setupAdminTest(t, nil)
	d.backend.On("GetOrder", mock.Anything, "ORD-ZZZZZZ").Return(nil, backend.ErrNotFound).Once()

	_, err := d.svc.UpdateOrderStatus(context.Background(), "ORD-ZZZZZZ", order.UpdateStatusRequest{
		PaymentStatus: order.PaymentPaid,
		OrderStatus:   order.StatusProcessing,
	})

	assert.ErrorIs(t, err, backend.ErrNotFound)
	d.backend.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything)
}

func TestAdminService_UpdateOrderStatus_InvalidStatusRejected(t *testing.T) {
	d := setupAdminTest(t, nil)
	d.backend.On("GetOrder", mock.Anything, "ORD-AAAAA1").Return(pendingOrder("ORD-AAAAA1"), nil).Once()

	_, err := d.svc.UpdateOrderStatus(context.Background(), "ORD-AAAAA1", order.UpdateStatusRequest{
		PaymentStatus: "Lunas",
		OrderStatus:   order.StatusProcessing,
	})

	var transition *order.TransitionError
	assert.True(t, errors.As(err, &transition))
	d.backend.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything)
}

func TestAdminService_UpdateOrderStatus_ForwardOnlyPolicy(t *testing.T) {
	d := setupAdminTest(t, order.ForwardOnlyPolicy{})

	shipped := pendingOrder("ORD-AAAAA1")
	shipped.OrderStatus = order.StatusShipped
	d.backend.On("GetOrder", mock.Anything, "ORD-AAAAA1").Return(shipped, nil).Once()

	_, err := d.svc.UpdateOrderStatus(context.Background(), "ORD-AAAAA1", order.UpdateStatusRequest{
		PaymentStatus: order.PaymentPaid,
		OrderStatus:   order.StatusProcessing,
	})

	var transition *order.TransitionError
	assert.True(t, errors.As(err, &transition))
	d.backend.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything)
}

func TestAdminService_UpdateOrderStatus_ForwardOnlyKeepsTerminalState(t *testing.T) {
	d := setupAdminTest(t, order.ForwardOnlyPolicy{})

	completed := pendingOrder("ORD-AAAAA1")
	completed.PaymentStatus = order.PaymentPaid
	completed.OrderStatus = order.StatusCompleted
	d.backend.On("GetOrder", mock.Anything, "ORD-AAAAA1").Return(completed, nil).Once()

	_, err := d.svc.UpdateOrderStatus(context.Background(), "ORD-AAAAA1", order.UpdateStatusRequest{
		PaymentStatus: order.PaymentPaid,
		OrderStatus:   order.StatusPending,
	})

	var transition *order.TransitionError
	require.True(t, errors.As(err, &transition))
	assert.Contains(t, transition.Reason, "sudah final")
	d.backend.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything)
}

func TestAdminService_UpdateOrderStatus_BackendFailureNoRetry(t *testing.T) {
	d := setupAdminTest(t, nil)
	d.backend.On("GetOrder", mock.Anything, "ORD-AAAAA1").Return(pendingOrder("ORD-AAAAA1"), nil).Once()
	d.backend.On("UpdateOrderStatus", mock.Anything, mock.Anything).
		Return(&backend.RejectedError{Message: "Sheet terkunci"}).Once()

	_, err := d.svc.UpdateOrderStatus(context.Background(), "ORD-AAAAA1", order.UpdateStatusRequest{
		PaymentStatus: order.PaymentPaid,
		OrderStatus:   order.StatusProcessing,
	})

	var rejected *backend.RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Sheet terkunci", rejected.Message)
	d.backend.AssertNumberOfCalls(t, "UpdateOrderStatus", 1)
	d.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func reachedSteps(steps []order.ProgressStep) []bool {
	out := make([]bool, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.Reached)
	}
	return out
}
