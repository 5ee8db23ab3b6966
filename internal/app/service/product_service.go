package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/repository"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
)

var ErrProductNotFound = errors.New("product not found")

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 5 * time.Minute
)

// ProductService handles catalog business logic
type ProductService interface {
	ListProducts() ([]model.Product, error)
	GetProductByID(productID int) (*model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	cache       *redis.Client // nil disables caching
}

// NewProductService creates a new product service. cache may be nil.
func NewProductService(productRepo repository.ProductRepository, cache *redis.Client) ProductService {
	return &productService{
		productRepo: productRepo,
		cache:       cache,
	}
}

// ListProducts returns the full catalog, read through the cache when enabled
func (s *productService) ListProducts() ([]model.Product, error) {
	if products, ok := s.cachedCatalog(); ok {
		return products, nil
	}

	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list products", err)
		return nil, err
	}

	s.storeCatalog(products)
	return products, nil
}

// GetProductByID returns a single product by its public catalog id
func (s *productService) GetProductByID(productID int) (*model.Product, error) {
	product, err := s.productRepo.FindByProductID(productID)
	if err != nil {
		logger.Error("Failed to get product", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) cachedCatalog() ([]model.Product, bool) {
	if s.cache == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	raw, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Catalog cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		logger.Warn("Corrupt catalog cache entry, ignoring", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}
	return products, true
}

func (s *productService) storeCatalog(products []model.Product) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := s.cache.Set(ctx, catalogCacheKey, raw, catalogCacheTTL).Err(); err != nil {
		logger.Warn("Catalog cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
