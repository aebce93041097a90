package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/internal/backend"
	"storefront/internal/product"
	"storefront/internal/session"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ProductService melayani katalog (dibaca lewat cache Redis) dan CRUD admin.
type ProductService interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
	GetProduct(ctx context.Context, id string) (*product.Product, error)
	CreateProduct(ctx context.Context, req product.ProductRequest) error
	UpdateProduct(ctx context.Context, id string, req product.ProductRequest) error
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	backend backend.Backend
	rdb     *redis.Client
	ttl     time.Duration
	logger  *zap.Logger
}

func NewProductService(b backend.Backend, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) ProductService {
	if ttl <= 0 {
		ttl = session.TTLProductCache
	}
	return &productService{backend: b, rdb: rdb, ttl: ttl, logger: logger}
}

func (s *productService) ListProducts(ctx context.Context) ([]product.Product, error) {
	// TUGAS 1: Cek Cache (Redis)
	var cached []product.Product
	if s.cacheGet(ctx, session.KeyProductList, &cached) {
		return cached, nil
	}

	// TUGAS 2: Ambil dari backend
	products, err := s.backend.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("gagal memuat produk: %w", err)
	}

	// TUGAS 3: Simpan ke Cache
	s.cacheSet(ctx, session.KeyProductList, products)
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*product.Product, error) {
	key := fmt.Sprintf(session.KeyProduct, id)
	var cached product.Product
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	p, err := s.backend.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, p)
	return p, nil
}

func (s *productService) CreateProduct(ctx context.Context, req product.ProductRequest) error {
	if err := s.backend.CreateProduct(ctx, req.ToProduct("")); err != nil {
		return err
	}
	s.invalidate(ctx, "")
	return nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req product.ProductRequest) error {
	if err := s.backend.EditProduct(ctx, req.ToProduct(id)); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.backend.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// --- Fungsi Helper (Internal) ---

func (s *productService) cacheGet(ctx context.Context, key string, out any) bool {
	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("product cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	s.logger.Debug("cache hit", zap.String("key", key))
	return true
}

func (s *productService) cacheSet(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("product cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *productService) invalidate(ctx context.Context, id string) {
	keys := []string{session.KeyProductList}
	if id != "" {
		keys = append(keys, fmt.Sprintf(session.KeyProduct, id))
	}
	s.rdb.Del(ctx, keys...)
}
