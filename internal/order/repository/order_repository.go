// internal/order/repository/order_repository.go
package repository

import (
	"context"
	"errors"

	"storefront/internal/order"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order tidak ditemukan")

// 1. Definisikan "Kontrak" (Interface)
type OrderRepository interface {
	Save(ctx context.Context, o *order.Order) (*order.Order, error)
	FindByOrderID(ctx context.Context, orderID string) (*order.Order, error)
	FindAll(ctx context.Context) ([]order.Order, error)
	UpdateStatus(ctx context.Context, orderID string, statuses order.StatusPair) error
}

// 2. Definisikan "Implementasi" (Struct)
type orderRepository struct {
	db *gorm.DB
}

// 3. Buat "Constructor". db boleh berupa transaksi.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Save(ctx context.Context, o *order.Order) (*order.Order, error) {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) FindByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	var o order.Order
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// FindAll mengurutkan pesanan terbaru di atas, sama seperti tabel di konsol admin.
func (r *orderRepository) FindAll(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus menulis kedua sumbu status dalam satu UPDATE.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, statuses order.StatusPair) error {
	res := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"payment_status": statuses.Payment,
			"order_status":   statuses.Order,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
