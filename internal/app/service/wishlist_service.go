package service

import (
	"errors"

	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/repository"
	apperrors "github.com/vibecommerce/vibecommerce-backend/internal/errors"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
)

var ErrAlreadyInWishlist = errors.New("product is already in wishlist")

// WishlistService handles per-user product wishlists. The wishlist stores
// catalog ids only; listing re-joins the live catalog so prices and names
// are always current, unlike cart snapshots.
type WishlistService interface {
	Add(userID uint, productID int) (*PublicUser, error)
	Remove(userID uint, productID int) (*PublicUser, error)
	ListProducts(userID uint) ([]model.Product, error)
}

type wishlistService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(userRepo repository.UserRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistService{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// Add puts a product on the wishlist. Duplicates are rejected.
func (s *wishlistService) Add(userID uint, productID int) (*PublicUser, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	product, err := s.productRepo.FindByProductID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	for _, item := range user.Wishlist {
		if item.ProductID == productID {
			return nil, ErrAlreadyInWishlist
		}
	}

	item := &model.WishlistItem{UserID: user.ID, ProductID: productID}
	if err := s.userRepo.AddWishlistItem(item); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, ErrAlreadyInWishlist
		}
		logger.Error("Failed to add wishlist item", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return nil, err
	}

	return s.reloadPublicUser(userID)
}

// Remove takes a product off the wishlist. Removing an absent product is a
// no-op success.
func (s *wishlistService) Remove(userID uint, productID int) (*PublicUser, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.userRepo.RemoveWishlistItem(user.ID, productID); err != nil {
		logger.Error("Failed to remove wishlist item", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return nil, err
	}

	return s.reloadPublicUser(userID)
}

// ListProducts resolves the wishlist against the live catalog. Ids whose
// product has disappeared from the catalog are skipped silently.
func (s *wishlistService) ListProducts(userID uint) ([]model.Product, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	products := make([]model.Product, 0, len(user.Wishlist))
	for _, item := range user.Wishlist {
		product, err := s.productRepo.FindByProductID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (s *wishlistService) reloadPublicUser(userID uint) (*PublicUser, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	public := toPublicUser(user)
	return &public, nil
}
