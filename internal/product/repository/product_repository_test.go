package repository_test

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/product"
	"storefront/internal/product/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&product.Product{}))
	return db
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	repo := repository.NewProductRepository(setupTestDB(t))
	ctx := context.Background()

	p := &product.Product{Name: "Kopi Gayo", Price: 50000, Stock: 10}
	require.NoError(t, repo.Create(ctx, p))
	assert.NotEmpty(t, p.ID, "ID seharusnya diisi BeforeCreate")

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kopi Gayo", found.Name)
	assert.Equal(t, int64(50000), found.Price)

	_, err = repo.FindByID(ctx, "tidak-ada")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_FindAll_SortedByName(t *testing.T) {
	repo := repository.NewProductRepository(setupTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Teh Melati", "Arabika", "Kopi Gayo"} {
		require.NoError(t, repo.Create(ctx, &product.Product{Name: name, Price: 1000, Stock: 1}))
	}

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Arabika", products[0].Name)
	assert.Equal(t, "Teh Melati", products[2].Name)
}

func TestProductRepository_UpdateAndDelete(t *testing.T) {
	repo := repository.NewProductRepository(setupTestDB(t))
	ctx := context.Background()

	p := &product.Product{ID: "P1", Name: "Kopi", Price: 10000, Stock: 5}
	require.NoError(t, repo.Create(ctx, p))

	p.Name = "Kopi Toraja"
	p.Stock = 0
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.FindByID(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Kopi Toraja", found.Name)
	assert.Equal(t, 0, found.Stock, "Stok nol harus ikut ter-update (map, bukan struct)")

	assert.ErrorIs(t, repo.Update(ctx, &product.Product{ID: "P9", Name: "x"}), repository.ErrProductNotFound)

	require.NoError(t, repo.Delete(ctx, "P1"))
	assert.ErrorIs(t, repo.Delete(ctx, "P1"), repository.ErrProductNotFound)
}

func TestProductRepository_DecrementStock(t *testing.T) {
	repo := repository.NewProductRepository(setupTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &product.Product{ID: "P1", Name: "Kopi", Price: 10000, Stock: 3}))

	require.NoError(t, repo.DecrementStock(ctx, "P1", 2))
	found, err := repo.FindByID(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, 1, found.Stock)

	err = repo.DecrementStock(ctx, "P1", 2)
	assert.ErrorIs(t, err, repository.ErrInsufficientStock)

	found, err = repo.FindByID(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, 1, found.Stock, "Stok tidak boleh berubah saat ditolak")
}
