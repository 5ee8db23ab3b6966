package repository

import (
	"errors"

	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"gorm.io/gorm"
)

// CartRepository handles cart data access. Mutations run inside the caller's
// transaction so a cart and its line items never go out of sync.
type CartRepository interface {
	FindByUserKey(userKey string) (*model.Cart, error)
	FindByUserKeyTx(tx *gorm.DB, userKey string) (*model.Cart, error)
	Create(tx *gorm.DB, cart *model.Cart) error
	UpdateTotal(tx *gorm.DB, cartID uint, total float64) error
	AddLineItem(tx *gorm.DB, item *model.CartLineItem) error
	UpdateLineItemQuantity(tx *gorm.DB, itemID uint, quantity int) error
	DeleteLineItem(tx *gorm.DB, itemID uint) error
	DeleteAllLineItems(tx *gorm.DB, cartID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// FindByUserKey loads a cart with its line items, or nil when absent
func (r *cartRepository) FindByUserKey(userKey string) (*model.Cart, error) {
	return r.FindByUserKeyTx(r.db, userKey)
}

// FindByUserKeyTx is FindByUserKey inside an existing transaction
func (r *cartRepository) FindByUserKeyTx(tx *gorm.DB, userKey string) (*model.Cart, error) {
	var cart model.Cart
	err := tx.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("cart_line_items.id ASC")
	}).Where("user_key = ?", userKey).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Create inserts a new cart
func (r *cartRepository) Create(tx *gorm.DB, cart *model.Cart) error {
	return tx.Create(cart).Error
}

// UpdateTotal persists a recomputed cart total
func (r *cartRepository) UpdateTotal(tx *gorm.DB, cartID uint, total float64) error {
	return tx.Model(&model.Cart{}).Where("id = ?", cartID).
		Update("total_amount", total).Error
}

// AddLineItem inserts a new cart line item
func (r *cartRepository) AddLineItem(tx *gorm.DB, item *model.CartLineItem) error {
	return tx.Create(item).Error
}

// UpdateLineItemQuantity sets the quantity of an existing line item
func (r *cartRepository) UpdateLineItemQuantity(tx *gorm.DB, itemID uint, quantity int) error {
	return tx.Model(&model.CartLineItem{}).Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

// DeleteLineItem removes a single line item
func (r *cartRepository) DeleteLineItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&model.CartLineItem{}, itemID).Error
}

// DeleteAllLineItems empties a cart
func (r *cartRepository) DeleteAllLineItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&model.CartLineItem{}).Error
}
