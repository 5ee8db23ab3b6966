package service

import (
	"errors"

	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/repository"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
)

// CartView is the cart projection returned to clients. ItemCount is the sum
// of line quantities, computed on read and never stored.
type CartView struct {
	UserID      string               `json:"userId"`
	Items       []model.CartLineItem `json:"items"`
	TotalAmount float64              `json:"totalAmount"`
	ItemCount   int                  `json:"itemCount"`
}

// CartService handles cart business logic. Every operation takes a Session so
// guest handling stays out of the call sites.
type CartService interface {
	GetCart(session model.Session) (*CartView, error)
	AddItem(session model.Session, productID, quantity int) (*CartView, error)
	UpdateQuantity(session model.Session, productID, quantity int) (*CartView, error)
	RemoveItem(session model.Session, productID int) (*CartView, error)
	Clear(session model.Session) error
}

type cartService struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(db *gorm.DB, cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		db:          db,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the session's cart, creating an empty one on first access
func (s *cartService) GetCart(session model.Session) (*CartView, error) {
	var view *CartView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.loadOrCreateCart(tx, session)
		if err != nil {
			return err
		}
		view = buildCartView(cart)
		return nil
	})
	if err != nil {
		logger.Error("Failed to get cart", err, map[string]interface{}{
			"user_key": session.CartKey(),
		})
		return nil, err
	}
	return view, nil
}

// AddItem puts a product into the cart. Adding a product already in the cart
// accumulates quantity on the existing line instead of appending a new one.
func (s *cartService) AddItem(session model.Session, productID, quantity int) (*CartView, error) {
	product, err := s.productRepo.FindByProductID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	var view *CartView
	err = s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.loadOrCreateCart(tx, session)
		if err != nil {
			return err
		}

		if existing := findLineItem(cart, productID); existing != nil {
			if err := s.cartRepo.UpdateLineItemQuantity(tx, existing.ID, existing.Quantity+quantity); err != nil {
				return err
			}
		} else {
			item := &model.CartLineItem{
				CartID:    cart.ID,
				ProductID: product.ProductID,
				Name:      product.Name,
				Price:     product.Price,
				ImageURL:  product.ImageURL,
				Quantity:  quantity,
			}
			if err := s.cartRepo.AddLineItem(tx, item); err != nil {
				return err
			}
		}

		view, err = s.refreshCart(tx, session)
		return err
	})
	if err != nil {
		logger.Error("Failed to add item to cart", err, map[string]interface{}{
			"user_key":   session.CartKey(),
			"product_id": productID,
			"quantity":   quantity,
		})
		return nil, err
	}

	logger.Debug("Item added to cart", map[string]interface{}{
		"user_key":   session.CartKey(),
		"product_id": productID,
		"quantity":   quantity,
	})
	return view, nil
}

// UpdateQuantity replaces the stored quantity of an existing line item.
// Unlike RemoveItem this is strict: both the cart and the line must exist.
func (s *cartService) UpdateQuantity(session model.Session, productID, quantity int) (*CartView, error) {
	var view *CartView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.cartRepo.FindByUserKeyTx(tx, session.CartKey())
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}

		item := findLineItem(cart, productID)
		if item == nil {
			return ErrItemNotFound
		}

		if err := s.cartRepo.UpdateLineItemQuantity(tx, item.ID, quantity); err != nil {
			return err
		}

		view, err = s.refreshCart(tx, session)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrCartNotFound) && !errors.Is(err, ErrItemNotFound) {
			logger.Error("Failed to update cart item quantity", err, map[string]interface{}{
				"user_key":   session.CartKey(),
				"product_id": productID,
			})
		}
		return nil, err
	}
	return view, nil
}

// RemoveItem deletes a line item. Removing a product that is not in the cart
// succeeds silently; only a missing cart is an error.
func (s *cartService) RemoveItem(session model.Session, productID int) (*CartView, error) {
	var view *CartView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.cartRepo.FindByUserKeyTx(tx, session.CartKey())
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}

		if item := findLineItem(cart, productID); item != nil {
			if err := s.cartRepo.DeleteLineItem(tx, item.ID); err != nil {
				return err
			}
		}

		view, err = s.refreshCart(tx, session)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrCartNotFound) {
			logger.Error("Failed to remove item from cart", err, map[string]interface{}{
				"user_key":   session.CartKey(),
				"product_id": productID,
			})
		}
		return nil, err
	}
	return view, nil
}

// Clear empties the cart. A missing cart is a no-op, not an error.
func (s *cartService) Clear(session model.Session) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := s.cartRepo.FindByUserKeyTx(tx, session.CartKey())
		if err != nil {
			return err
		}
		if cart == nil {
			return nil
		}

		if err := s.cartRepo.DeleteAllLineItems(tx, cart.ID); err != nil {
			return err
		}
		return s.cartRepo.UpdateTotal(tx, cart.ID, 0)
	})
	if err != nil {
		logger.Error("Failed to clear cart", err, map[string]interface{}{
			"user_key": session.CartKey(),
		})
	}
	return err
}

func (s *cartService) loadOrCreateCart(tx *gorm.DB, session model.Session) (*model.Cart, error) {
	cart, err := s.cartRepo.FindByUserKeyTx(tx, session.CartKey())
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	cart = &model.Cart{UserKey: session.CartKey()}
	if err := s.cartRepo.Create(tx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// refreshCart recomputes and persists the total from the stored line items,
// then returns the up-to-date view. Client-supplied totals are never trusted.
func (s *cartService) refreshCart(tx *gorm.DB, session model.Session) (*CartView, error) {
	cart, err := s.cartRepo.FindByUserKeyTx(tx, session.CartKey())
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	total := 0.0
	for _, item := range cart.Items {
		total += item.Price * float64(item.Quantity)
	}

	if err := s.cartRepo.UpdateTotal(tx, cart.ID, total); err != nil {
		return nil, err
	}
	cart.TotalAmount = total

	return buildCartView(cart), nil
}

func findLineItem(cart *model.Cart, productID int) *model.CartLineItem {
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			return &cart.Items[i]
		}
	}
	return nil
}

func buildCartView(cart *model.Cart) *CartView {
	itemCount := 0
	for _, item := range cart.Items {
		itemCount += item.Quantity
	}

	items := cart.Items
	if items == nil {
		items = []model.CartLineItem{}
	}

	return &CartView{
		UserID:      cart.UserKey,
		Items:       items,
		TotalAmount: cart.TotalAmount,
		ItemCount:   itemCount,
	}
}
