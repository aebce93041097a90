// Package local adalah implementasi Backend di atas database sendiri (GORM).
// Dipakai saat storefront tidak diarahkan ke backend remote.
package local

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/backend"
	"storefront/internal/order"
	orderrepo "storefront/internal/order/repository"
	"storefront/internal/product"
	productrepo "storefront/internal/product/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminAccount adalah satu akun admin yang dikonfigurasi lewat config.
type AdminAccount struct {
	Username     string
	PasswordHash string
	Name         string
}

type Store struct {
	db       *gorm.DB
	orders   orderrepo.OrderRepository
	products productrepo.ProductRepository
	admin    AdminAccount
	timeout  time.Duration
	logger   *zap.Logger
}

// NewStore: setiap panggilan dibatasi timeout (0 berarti backend.DefaultTimeout).
func NewStore(db *gorm.DB, admin AdminAccount, timeout time.Duration, logger *zap.Logger) *Store {
	if timeout <= 0 {
		timeout = backend.DefaultTimeout
	}
	return &Store{
		db:       db,
		orders:   orderrepo.NewOrderRepository(db),
		products: productrepo.NewProductRepository(db),
		admin:    admin,
		timeout:  timeout,
		logger:   logger,
	}
}

var _ backend.Backend = (*Store)(nil)

// Migrate membuat tabel orders dan products.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&order.Order{}, &product.Product{})
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", backend.ErrUnavailable, err)
}

func (s *Store) GetProducts(ctx context.Context) ([]product.Product, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.products.FindByID(ctx, id)
	if errors.Is(err, productrepo.ErrProductNotFound) {
		return nil, backend.ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}
	return p, nil
}

// CreateOrder menyimpan order dan mengurangi stok dalam satu transaksi.
// Harga dan nama produk diambil ulang dari database, bukan dipercaya dari klien.
func (s *Store) CreateOrder(ctx context.Context, o *order.Order) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orders := orderrepo.NewOrderRepository(tx)
		products := productrepo.NewProductRepository(tx)

		// TUGAS 1: Tolak order ID duplikat
		if _, err := orders.FindByOrderID(ctx, o.OrderID); err == nil {
			return &backend.RejectedError{Message: "Order ID sudah digunakan"}
		} else if !errors.Is(err, orderrepo.ErrOrderNotFound) {
			return err
		}

		// TUGAS 2: Ambil produk dan kurangi stok
		p, err := products.FindByID(ctx, o.ProductID)
		if errors.Is(err, productrepo.ErrProductNotFound) {
			return &backend.RejectedError{Message: "Produk tidak ditemukan"}
		}
		if err != nil {
			return err
		}
		if err := products.DecrementStock(ctx, p.ID, o.Quantity); err != nil {
			if errors.Is(err, productrepo.ErrInsufficientStock) {
				return &backend.RejectedError{Message: "Stok produk tidak mencukupi"}
			}
			return err
		}

		// TUGAS 3: Simpan order
		o.ProductName = p.Name
		o.UnitPrice = p.Price
		o.TotalPrice = p.Price * int64(o.Quantity)
		_, err = orders.Save(ctx, o)
		return err
	})

	var rejected *backend.RejectedError
	if errors.As(err, &rejected) {
		return rejected
	}
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) TrackOrder(ctx context.Context, orderID string) (*order.Order, error) {
	return s.findOrder(ctx, orderID)
}

func (s *Store) AdminLogin(ctx context.Context, creds backend.Credentials) (*backend.LoginResult, error) {
	invalid := &backend.RejectedError{Message: "Username atau password salah"}
	if s.admin.Username == "" || s.admin.PasswordHash == "" {
		return nil, invalid
	}
	if creds.Username != s.admin.Username {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, invalid
	}
	name := s.admin.Name
	if name == "" {
		name = s.admin.Username
	}
	return &backend.LoginResult{Token: uuid.NewString(), Name: name}, nil
}

func (s *Store) GetOrders(ctx context.Context) ([]order.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return orders, nil
}

func (s *Store) GetOrder(ctx context.Context, orderID string) (*order.Order, error) {
	return s.findOrder(ctx, orderID)
}

func (s *Store) UpdateOrderStatus(ctx context.Context, u backend.StatusUpdate) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.orders.UpdateStatus(ctx, u.OrderID, order.StatusPair{Payment: u.PaymentStatus, Order: u.OrderStatus})
	if errors.Is(err, orderrepo.ErrOrderNotFound) {
		return &backend.RejectedError{Message: "Pesanan tidak ditemukan"}
	}
	if err != nil {
		return unavailable(err)
	}
	s.logger.Info("order status updated",
		zap.String("order_id", u.OrderID),
		zap.String("payment_status", string(u.PaymentStatus)),
		zap.String("order_status", string(u.OrderStatus)))
	return nil
}

func (s *Store) CreateProduct(ctx context.Context, p product.Product) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.products.Create(ctx, &p); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) EditProduct(ctx context.Context, p product.Product) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.products.Update(ctx, &p)
	if errors.Is(err, productrepo.ErrProductNotFound) {
		return &backend.RejectedError{Message: "Produk tidak ditemukan"}
	}
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := s.products.Delete(ctx, id)
	if errors.Is(err, productrepo.ErrProductNotFound) {
		return &backend.RejectedError{Message: "Produk tidak ditemukan"}
	}
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) findOrder(ctx context.Context, orderID string) (*order.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.orders.FindByOrderID(ctx, orderID)
	if errors.Is(err, orderrepo.ErrOrderNotFound) {
		return nil, backend.ErrNotFound
	}
	if err != nil {
		return nil, unavailable(err)
	}
	return o, nil
}
