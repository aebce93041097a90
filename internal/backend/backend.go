// Package backend mendefinisikan kontrak ke backend yang memegang data produk dan pesanan.
package backend

import (
	"context"
	"errors"
	"time"

	"storefront/internal/order"
	"storefront/internal/product"
)

// DefaultTimeout membatasi setiap panggilan backend jika backend_timeout tidak diatur.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound dikembalikan saat backend melaporkan data tidak ada.
	ErrNotFound = errors.New("data tidak ditemukan")
	// ErrUnavailable membungkus kegagalan transport: tidak terjangkau, non-2xx, respons rusak.
	ErrUnavailable = errors.New("backend tidak dapat dihubungi")
)

// RejectedError adalah kesalahan bisnis dari backend (success: false).
// Message diteruskan apa adanya ke pengguna.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "permintaan ditolak backend"
	}
	return e.Message
}

// Credentials untuk login admin
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult dikembalikan backend setelah login admin berhasil.
type LoginResult struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// StatusUpdate mengirim kedua sumbu status dalam satu panggilan.
type StatusUpdate struct {
	OrderID       string              `json:"order_id"`
	PaymentStatus order.PaymentStatus `json:"payment_status"`
	OrderStatus   order.OrderStatus   `json:"order_status"`
}

// Backend adalah kolaborator eksternal. Semua panggilan membawa context supaya bisa dibatasi timeout.
type Backend interface {
	GetProducts(ctx context.Context) ([]product.Product, error)
	GetProduct(ctx context.Context, id string) (*product.Product, error)
	CreateOrder(ctx context.Context, o *order.Order) error
	TrackOrder(ctx context.Context, orderID string) (*order.Order, error)
	AdminLogin(ctx context.Context, creds Credentials) (*LoginResult, error)
	GetOrders(ctx context.Context) ([]order.Order, error)
	GetOrder(ctx context.Context, orderID string) (*order.Order, error)
	UpdateOrderStatus(ctx context.Context, u StatusUpdate) error
	CreateProduct(ctx context.Context, p product.Product) error
	EditProduct(ctx context.Context, p product.Product) error
	DeleteProduct(ctx context.Context, id string) error
}
