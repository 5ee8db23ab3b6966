package repository

import (
	"errors"

	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"gorm.io/gorm"
)

// ProductRepository handles catalog data access
type ProductRepository interface {
	FindAll() ([]model.Product, error)
	FindByProductID(productID int) (*model.Product, error)
	Count() (int64, error)
	BulkCreate(products []model.Product) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// FindAll returns the full catalog ordered by public product id
func (r *productRepository) FindAll() ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Order("product_id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindByProductID finds a product by its public catalog id
func (r *productRepository) FindByProductID(productID int) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("product_id = ?", productID).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Count returns the number of catalog products
func (r *productRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}

// BulkCreate inserts a batch of products in a single transaction
func (r *productRepository) BulkCreate(products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&products).Error
	})
}
