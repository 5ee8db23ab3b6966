package model

import (
	"time"
)

// User is an identity record. Password storage format depends on the
// configured credential verifier (plaintext in the demo setup); it never
// leaves the service layer.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Avatar    string         `json:"avatar"`
	Wishlist  []WishlistItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
}

func (User) TableName() string {
	return "users"
}

// WishlistItem stores a favorited catalog product id. Unlike cart items this
// is a reference only; wishlist display re-joins the live catalog.
type WishlistItem struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_wishlist_product" json:"-"`
	ProductID int       `gorm:"not null;uniqueIndex:idx_user_wishlist_product" json:"productId"`
	CreatedAt time.Time `json:"-"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
