// internal/order/service/order_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/backend"
	"storefront/internal/order"
	"storefront/internal/product"
	"storefront/internal/session"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// 1. Definisikan "Kontrak" (Interface) Service
type OrderService interface {
	PrepareDraft(ctx context.Context, req order.DraftRequest) (*order.DraftResponse, error)
	SubmitOrder(ctx context.Context, req order.SubmitOrderRequest) (*order.SubmitOrderResponse, error)
	CheckPaymentProof(proof *order.PaymentProof) error
	GetConfirmation(ctx context.Context, token string) (*order.Confirmation, error)
	TrackOrder(ctx context.Context, orderID string) (*order.TrackingView, error)
}

// ProductClient cukup untuk membaca satu produk (dipenuhi oleh product service yang ber-cache).
type ProductClient interface {
	GetProduct(ctx context.Context, id string) (*product.Product, error)
}

// HandoffStore dipenuhi oleh session.Handoff.
type HandoffStore interface {
	PutDraft(ctx context.Context, d order.Draft) (string, error)
	GetDraft(ctx context.Context, token string) (*order.Draft, error)
	DeleteDraft(ctx context.Context, token string) error
	PutConfirmation(ctx context.Context, c order.Confirmation) (string, error)
	TakeConfirmation(ctx context.Context, token string) (*order.Confirmation, error)
}

// EventEmitter dipenuhi oleh events.Emitter.
type EventEmitter interface {
	OrderCreated(o *order.Order) error
	StatusUpdated(orderID string, from, to order.StatusPair) error
}

type Options struct {
	SiteOrigin    string
	ProofRules    order.ProofRules
	TrackCacheTTL time.Duration
	NewID         order.IDGenerator
	Now           func() time.Time
}

// 2. Definisikan "Implementasi" (Struct)
type orderService struct {
	backend  backend.Backend
	products ProductClient
	handoff  HandoffStore
	rdb      *redis.Client
	events   EventEmitter
	opts     Options
	logger   *zap.Logger
}

// 3. Buat "Constructor" (yang dipanggil oleh main.go)
func NewOrderService(b backend.Backend, products ProductClient, handoff HandoffStore, rdb *redis.Client, events EventEmitter, opts Options, logger *zap.Logger) OrderService {
	if opts.NewID == nil {
		opts.NewID = order.GenerateOrderID
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TrackCacheTTL <= 0 {
		opts.TrackCacheTTL = session.TTLTrackCache
	}
	if opts.ProofRules.MaxBytes == 0 {
		opts.ProofRules = order.DefaultProofRules()
	}
	return &orderService{
		backend:  b,
		products: products,
		handoff:  handoff,
		rdb:      rdb,
		events:   events,
		opts:     opts,
		logger:   logger,
	}
}

// --- Implementasi Logika Inti ---

// PrepareDraft menyimpan pilihan produk dan jumlah untuk dibawa ke form pemesanan.
func (s *orderService) PrepareDraft(ctx context.Context, req order.DraftRequest) (*order.DraftResponse, error) {
	// Form produk mulai dari 1
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	// TUGAS 1: Ambil info produk (harga & stok)
	p, err := s.products.GetProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	// TUGAS 2: Validasi jumlah dan hitung total
	draft, err := order.NewDraft(p.ID, p.Name, p.Price, p.Stock, req.Quantity)
	if err != nil {
		return nil, err
	}

	// TUGAS 3: Simpan ke handoff store
	token, err := s.handoff.PutDraft(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("gagal menyimpan draft: %w", err)
	}

	return &order.DraftResponse{
		DraftToken: token,
		Draft:      draft,
		TotalLabel: order.FormatRupiah(draft.TotalPrice),
	}, nil
}

// SubmitOrder memvalidasi form, membuat order di backend, lalu menyerahkan snapshot ke halaman sukses.
// Jika backend gagal, draft tetap ada supaya pelanggan bisa mencoba lagi.
func (s *orderService) SubmitOrder(ctx context.Context, req order.SubmitOrderRequest) (*order.SubmitOrderResponse, error) {
	// TUGAS 1: Draft harus ada
	draft, err := s.handoff.GetDraft(ctx, req.DraftToken)
	if err != nil {
		return nil, err
	}

	// TUGAS 2: Validasi form (kesalahan pertama yang menang), lalu jumlah terhadap snapshot stok
	if err := order.ValidateSubmission(req.SubmissionInput, s.opts.ProofRules); err != nil {
		return nil, err
	}
	if err := order.ValidateQuantity(draft.Quantity, draft.Stock); err != nil {
		return nil, err
	}

	// TUGAS 3: Bangun order baru
	newOrder := order.NewOrder(s.opts.NewID(), s.opts.Now(), s.opts.SiteOrigin, *draft, req.SubmissionInput)

	// TUGAS 4: Kirim ke backend. Tidak ada retry.
	if err := s.backend.CreateOrder(ctx, newOrder); err != nil {
		var rejected *backend.RejectedError
		if errors.As(err, &rejected) {
			s.logger.Info("order rejected by backend",
				zap.String("order_id", newOrder.OrderID),
				zap.String("reason", rejected.Message))
			return nil, rejected
		}
		return nil, fmt.Errorf("gagal membuat order %s: %w", newOrder.OrderID, err)
	}

	// TUGAS 5: Publish event "order.created"
	// Jika publish gagal, order tetap dianggap berhasil.
	if err := s.events.OrderCreated(newOrder); err != nil {
		s.logger.Warn("order created but event publish failed",
			zap.String("order_id", newOrder.OrderID), zap.Error(err))
	}

	// TUGAS 6: Hapus cache produk, stok sudah berubah di backend
	s.rdb.Del(ctx, fmt.Sprintf(session.KeyProduct, newOrder.ProductID), session.KeyProductList)

	// TUGAS 7: Serahkan snapshot ke halaman sukses, lalu hapus draft
	confirmationToken, err := s.handoff.PutConfirmation(ctx, order.NewConfirmation(newOrder))
	if err != nil {
		s.logger.Warn("confirmation handoff failed", zap.String("order_id", newOrder.OrderID), zap.Error(err))
	}
	if err := s.handoff.DeleteDraft(ctx, req.DraftToken); err != nil {
		s.logger.Warn("draft cleanup failed", zap.String("order_id", newOrder.OrderID), zap.Error(err))
	}

	s.logger.Info("order created",
		zap.String("order_id", newOrder.OrderID),
		zap.String("payment_method", string(newOrder.PaymentMethod)),
		zap.Int64("total_price", newOrder.TotalPrice))

	return &order.SubmitOrderResponse{
		OrderID:           newOrder.OrderID,
		TrackingLink:      newOrder.TrackingLink,
		ConfirmationToken: confirmationToken,
	}, nil
}

// CheckPaymentProof dipanggil saat pelanggan memilih file, sebelum form dikirim.
func (s *orderService) CheckPaymentProof(proof *order.PaymentProof) error {
	return order.ValidatePaymentProof(proof, s.opts.ProofRules)
}

func (s *orderService) GetConfirmation(ctx context.Context, token string) (*order.Confirmation, error) {
	return s.handoff.TakeConfirmation(ctx, token)
}

// TrackOrder: tidak ditemukan dan backend error sama-sama menjadi ErrTrackingUnavailable.
func (s *orderService) TrackOrder(ctx context.Context, orderID string) (*order.TrackingView, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, order.ErrOrderIDRequired
	}
	// Pelanggan boleh menempelkan tracking link utuh
	if id, err := order.OrderIDFromTrackingLink(orderID); err == nil {
		orderID = id
	}
	if !order.IsValidOrderID(orderID) {
		s.logger.Info("tracking: malformed order id", zap.String("order_id", orderID))
		return nil, order.ErrTrackingUnavailable
	}

	// TUGAS 1: Cek Cache (Redis)
	cacheKey := fmt.Sprintf(session.KeyTrackCache, orderID)
	if val, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var cached order.Order
		if json.Unmarshal([]byte(val), &cached) == nil {
			s.logger.Debug("cache hit", zap.String("key", cacheKey))
			view := order.NewTrackingView(&cached)
			return &view, nil
		}
	}

	// TUGAS 2: Ambil dari backend
	o, err := s.backend.TrackOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			s.logger.Info("tracking: order not found", zap.String("order_id", orderID))
		} else {
			s.logger.Warn("tracking: backend failed", zap.String("order_id", orderID), zap.Error(err))
		}
		return nil, order.ErrTrackingUnavailable
	}

	// TUGAS 3: Simpan ke Cache
	if data, err := json.Marshal(o); err == nil {
		s.rdb.Set(ctx, cacheKey, data, s.opts.TrackCacheTTL)
	}

	view := order.NewTrackingView(o)
	return &view, nil
}
