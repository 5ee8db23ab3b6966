package repository

import (
	"time"

	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"gorm.io/gorm"
)

// OrderRepository handles order data access. Orders are append-only; there is
// deliberately no update or delete surface here.
type OrderRepository interface {
	Create(order *model.Order) error
	FindByUserKey(userKey *string) ([]model.Order, error)
	CountSince(since time.Time) (int64, error)
	RevenueSince(since time.Time) (float64, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create persists an order together with its line items
func (r *orderRepository) Create(order *model.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// FindByUserKey returns a user's orders newest first. A nil key selects
// guest orders.
func (r *orderRepository) FindByUserKey(userKey *string) ([]model.Order, error) {
	var orders []model.Order
	query := r.db.Preload("Items")
	if userKey == nil {
		query = query.Where("user_key IS NULL")
	} else {
		query = query.Where("user_key = ?", *userKey)
	}
	if err := query.Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CountSince returns the number of orders placed at or after the given time
func (r *orderRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Where("order_date >= ?", since).Count(&count).Error
	return count, err
}

// RevenueSince sums the totals of orders placed at or after the given time
func (r *orderRepository) RevenueSince(since time.Time) (float64, error) {
	var revenue float64
	err := r.db.Model(&model.Order{}).Where("order_date >= ?", since).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&revenue).Error
	return revenue, err
}
