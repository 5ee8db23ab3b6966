package model

import (
	"time"
)

// Rating is the aggregate review score carried by every catalog product.
type Rating struct {
	Rate  float64 `gorm:"column:rate" json:"rate"`
	Count int     `gorm:"column:count" json:"count"`
}

// Product is a catalog entry. The catalog is read-only after seeding;
// ProductID is the external-facing key the storefront uses, distinct from
// the storage primary key.
type Product struct {
	ID          uint      `gorm:"primarykey" json:"-"`
	ProductID   int       `gorm:"uniqueIndex;not null" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `json:"image"`
	Category    string    `gorm:"type:varchar(50);index" json:"category"`
	Rating      Rating    `gorm:"embedded;embeddedPrefix:rating_" json:"rating"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (Product) TableName() string {
	return "products"
}
