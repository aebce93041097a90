package service

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/backend"
	"storefront/internal/order"
	"storefront/internal/session"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var ErrCredentialsRequired = &order.ValidationError{Field: "username", Message: "Username dan password harus diisi"}

// AdminService adalah sisi konsol admin: login, daftar pesanan, dan update status.
type AdminService interface {
	Login(ctx context.Context, creds backend.Credentials) (*backend.LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authorize(ctx context.Context, token string) (*session.AdminSession, error)
	ListOrders(ctx context.Context, f order.OrderFilter) (*order.AdminOrderList, error)
	GetOrder(ctx context.Context, orderID string) (*order.AdminOrderDetail, error)
	UpdateOrderStatus(ctx context.Context, orderID string, req order.UpdateStatusRequest) (*order.AdminUpdateResult, error)
}

// SessionStore dipenuhi oleh session.AdminSessions.
type SessionStore interface {
	Create(ctx context.Context, token, name string) (*session.AdminSession, error)
	Lookup(ctx context.Context, token string) (*session.AdminSession, error)
	Revoke(ctx context.Context, token string) error
}

type adminService struct {
	backend  backend.Backend
	sessions SessionStore
	rdb      *redis.Client
	events   EventEmitter
	policy   order.TransitionPolicy
	logger   *zap.Logger
}

func NewAdminService(b backend.Backend, sessions SessionStore, rdb *redis.Client, events EventEmitter, policy order.TransitionPolicy, logger *zap.Logger) AdminService {
	if policy == nil {
		policy = order.PermissivePolicy{}
	}
	return &adminService{
		backend:  b,
		sessions: sessions,
		rdb:      rdb,
		events:   events,
		policy:   policy,
		logger:   logger,
	}
}

func (s *adminService) Login(ctx context.Context, creds backend.Credentials) (*backend.LoginResult, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return nil, ErrCredentialsRequired
	}

	res, err := s.backend.AdminLogin(ctx, creds)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessions.Create(ctx, res.Token, res.Name); err != nil {
		return nil, err
	}
	s.logger.Info("admin logged in", zap.String("username", creds.Username))
	return res, nil
}

func (s *adminService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

func (s *adminService) Authorize(ctx context.Context, token string) (*session.AdminSession, error) {
	return s.sessions.Lookup(ctx, token)
}

// ListOrders: statistik selalu dihitung dari semua pesanan, filter hanya untuk tabel.
func (s *adminService) ListOrders(ctx context.Context, f order.OrderFilter) (*order.AdminOrderList, error) {
	orders, err := s.backend.GetOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("gagal memuat pesanan: %w", err)
	}
	list := order.NewAdminOrderList(orders, f)
	return &list, nil
}

func (s *adminService) GetOrder(ctx context.Context, orderID string) (*order.AdminOrderDetail, error) {
	o, err := s.backend.GetOrder(ctx, strings.TrimSpace(orderID))
	if err != nil {
		return nil, err
	}
	detail := order.NewAdminOrderDetail(o)
	return &detail, nil
}

// UpdateOrderStatus mengirim kedua status dalam satu panggilan, lalu memuat ulang detail
// dan seluruh koleksi dari backend. Salinan lokal tidak pernah di-patch.
func (s *adminService) UpdateOrderStatus(ctx context.Context, orderID string, req order.UpdateStatusRequest) (*order.AdminUpdateResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, order.ErrOrderIDRequired
	}

	// TUGAS 1: Order harus ada
	current, err := s.backend.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// TUGAS 2: Validasi perubahan status
	from := current.Statuses()
	to := order.StatusPair{Payment: req.PaymentStatus, Order: req.OrderStatus}
	if err := order.ValidateTransition(s.policy, from, to); err != nil {
		return nil, err
	}

	// TUGAS 3: Satu panggilan update ke backend
	err = s.backend.UpdateOrderStatus(ctx, backend.StatusUpdate{
		OrderID:       orderID,
		PaymentStatus: to.Payment,
		OrderStatus:   to.Order,
	})
	if err != nil {
		s.logger.Warn("order status update failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}

	// TUGAS 4: Hapus cache tracking dan publish event
	s.rdb.Del(ctx, fmt.Sprintf(session.KeyTrackCache, orderID))
	if err := s.events.StatusUpdated(orderID, from, to); err != nil {
		s.logger.Warn("status updated but event publish failed", zap.String("order_id", orderID), zap.Error(err))
	}

	// TUGAS 5: Muat ulang detail dan koleksi
	fresh, err := s.backend.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("status tersimpan, gagal memuat ulang pesanan: %w", err)
	}
	all, err := s.backend.GetOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("status tersimpan, gagal memuat ulang daftar pesanan: %w", err)
	}

	return &order.AdminUpdateResult{
		Order: order.NewAdminOrderDetail(fresh),
		Stats: order.ComputeStats(all),
	}, nil
}
