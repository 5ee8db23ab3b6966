package model

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Order is an immutable record of a completed checkout. UserKey is nil for
// guest checkouts rather than storing the guest sentinel.
type Order struct {
	ID            uint        `gorm:"primarykey" json:"-"`
	OrderID       string      `gorm:"uniqueIndex;not null" json:"orderId"`
	UserKey       *string     `gorm:"index" json:"userId,omitempty"`
	CustomerName  string      `gorm:"not null" json:"customerName"`
	CustomerEmail string      `gorm:"not null;index" json:"customerEmail"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64     `gorm:"not null" json:"totalAmount"`
	Status        OrderStatus `gorm:"type:varchar(20);default:'confirmed'" json:"status"`
	OrderDate     time.Time   `gorm:"not null" json:"orderDate"`
	CreatedAt     time.Time   `json:"-"`
	UpdatedAt     time.Time   `json:"-"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is a deep copy of a cart line item frozen at checkout time.
type OrderItem struct {
	ID        uint    `gorm:"primarykey" json:"-"`
	OrderID   uint    `gorm:"not null;index" json:"-"`
	ProductID int     `gorm:"not null" json:"productId"`
	Name      string  `gorm:"not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	ImageURL  string  `json:"image"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
