package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	// Impor struct Order dari direktori internal/order
	"storefront/internal/order"
	// Impor repository yang akan diuji
	"storefront/internal/order/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB membuka SQLite in-memory dengan nama unik per test supaya data tidak bocor antar test.
func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "Gagal membuka koneksi DB in-memory")

	err = db.AutoMigrate(&order.Order{})
	require.NoError(t, err, "Gagal melakukan AutoMigrate untuk tabel Order")

	return db
}

func newTestOrder(id, name string, createdAt time.Time) *order.Order {
	return &order.Order{
		OrderID:       id,
		CreatedAt:     createdAt,
		CustomerName:  name,
		CustomerPhone: "081234567890",
		ProductID:     "P1",
		ProductName:   "Kopi Gayo",
		Quantity:      2,
		UnitPrice:     50000,
		TotalPrice:    100000,
		PaymentMethod: order.MethodCOD,
	}
}

// ====================================================================
// TEST CASE: Save
// ====================================================================
func TestOrderRepository_Save_Success(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	// 1. Arrange: order tanpa ID dan tanpa status
	newOrder := newTestOrder("", "Budi", time.Now())

	// 2. Act
	savedOrder, err := repo.Save(ctx, newOrder)

	// 3. Assert: BeforeCreate mengisi ID dan status default
	require.NoError(t, err)
	assert.True(t, order.IsValidOrderID(savedOrder.OrderID), "Order ID seharusnya di-generate oleh BeforeCreate hook")
	assert.Equal(t, order.PaymentPending, savedOrder.PaymentStatus)
	assert.Equal(t, order.StatusPending, savedOrder.OrderStatus)

	var fetched order.Order
	err = db.First(&fetched, "order_id = ?", savedOrder.OrderID).Error
	require.NoError(t, err, "Order yang disimpan seharusnya dapat ditemukan di DB")
	assert.Equal(t, int64(100000), fetched.TotalPrice)
	assert.Equal(t, "Budi", fetched.CustomerName)
}

func TestOrderRepository_Save_DuplicateID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, newTestOrder("ORD-AAAAAA", "Budi", time.Now()))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newTestOrder("ORD-AAAAAA", "Sari", time.Now()))
	assert.Error(t, err, "Primary key duplikat seharusnya ditolak database")
}

// ====================================================================
// TEST CASE: FindByOrderID
// ====================================================================
func TestOrderRepository_FindByOrderID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, newTestOrder("ORD-ABC123", "Budi", time.Now()))
	require.NoError(t, err)

	found, err := repo.FindByOrderID(ctx, "ORD-ABC123")
	require.NoError(t, err)
	assert.Equal(t, "Budi", found.CustomerName)

	_, err = repo.FindByOrderID(ctx, "ORD-ZZZZZZ")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

// ====================================================================
// TEST CASE: FindAll
// ====================================================================
func TestOrderRepository_FindAll_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"ORD-AAAAA1", "ORD-AAAAA2", "ORD-AAAAA3"} {
		_, err := repo.Save(ctx, newTestOrder(id, "Pelanggan", base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	orders, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "ORD-AAAAA3", orders[0].OrderID)
	assert.Equal(t, "ORD-AAAAA1", orders[2].OrderID)
}

func TestOrderRepository_FindAll_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)

	orders, err := repo.FindAll(context.Background())

	assert.NoError(t, err, "Tabel kosong seharusnya tidak dianggap error")
	assert.Empty(t, orders)
}

// ====================================================================
// TEST CASE: UpdateStatus
// ====================================================================
func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, newTestOrder("ORD-ABC123", "Budi", time.Now()))
	require.NoError(t, err)

	err = repo.UpdateStatus(ctx, "ORD-ABC123", order.StatusPair{Payment: order.PaymentPaid, Order: order.StatusProcessing})
	require.NoError(t, err)

	found, err := repo.FindByOrderID(ctx, "ORD-ABC123")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentPaid, found.PaymentStatus)
	assert.Equal(t, order.StatusProcessing, found.OrderStatus)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewOrderRepository(db)

	err := repo.UpdateStatus(context.Background(), "ORD-ZZZZZZ", order.StatusPair{Payment: order.PaymentPaid, Order: order.StatusProcessing})

	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
