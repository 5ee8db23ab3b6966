package repository

import (
	"errors"
	"strings"

	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"gorm.io/gorm"
)

// UserRepository handles user data access
type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	AddWishlistItem(item *model.WishlistItem) error
	RemoveWishlistItem(userID uint, productID int) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user
func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// FindByID loads a user with their wishlist, or nil when absent
func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Wishlist", func(db *gorm.DB) *gorm.DB {
		return db.Order("wishlist_items.id ASC")
	}).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks a user up case-insensitively, or nil when absent
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Wishlist").
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// AddWishlistItem inserts a wishlist entry
func (r *userRepository) AddWishlistItem(item *model.WishlistItem) error {
	return r.db.Create(item).Error
}

// RemoveWishlistItem deletes a wishlist entry if present
func (r *userRepository) RemoveWishlistItem(userID uint, productID int) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItem{}).Error
}
