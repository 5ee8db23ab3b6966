package model

import (
	"time"
)

// Cart holds one user's open cart. One cart per user key, created lazily on
// first access and kept until explicitly cleared.
type Cart struct {
	ID          uint           `gorm:"primarykey" json:"-"`
	UserKey     string         `gorm:"uniqueIndex;not null" json:"userId"`
	Items       []CartLineItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64        `gorm:"not null;default:0" json:"totalAmount"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Cart) TableName() string {
	return "carts"
}

// CartLineItem is one product row in a cart. Name, price and image are
// snapshots taken at add-time; later catalog changes do not touch them.
// At most one row per product per cart — quantity accumulates instead.
type CartLineItem struct {
	ID        uint    `gorm:"primarykey" json:"-"`
	CartID    uint    `gorm:"not null;uniqueIndex:idx_cart_product" json:"-"`
	ProductID int     `gorm:"not null;uniqueIndex:idx_cart_product" json:"productId"`
	Name      string  `gorm:"not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	ImageURL  string  `json:"image"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
}

func (CartLineItem) TableName() string {
	return "cart_line_items"
}
