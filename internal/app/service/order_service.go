package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/repository"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
	"github.com/vibecommerce/vibecommerce-backend/pkg/util"
)

var (
	ErrEmptyCheckout       = errors.New("checkout requires at least one item")
	ErrMissingCustomerInfo = errors.New("customer name and email are required")
)

// Receipt is the checkout response: the persisted order plus derived
// presentation fields.
type Receipt struct {
	model.Order
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	Message           string    `json:"message"`
}

const (
	estimatedDeliveryDays = 5
	checkoutThanksMessage = "Thank you for your order! We will send you a confirmation email shortly."
)

// OrderService handles checkout and order history
type OrderService interface {
	Checkout(session model.Session, customerName, customerEmail string, items []model.OrderItem) (*Receipt, error)
	GetOrders(session model.Session) ([]model.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	cartService CartService
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, cartService CartService) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		cartService: cartService,
	}
}

// Checkout turns the submitted line items into an immutable order and
// returns the receipt. The charged total is always recomputed here; any
// total the client sends is ignored.
func (s *orderService) Checkout(session model.Session, customerName, customerEmail string, items []model.OrderItem) (*Receipt, error) {
	if customerName == "" || customerEmail == "" {
		return nil, ErrMissingCustomerInfo
	}
	if len(items) == 0 {
		return nil, ErrEmptyCheckout
	}

	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	var userKey *string
	if key, ok := session.UserKey(); ok {
		userKey = &key
	}

	order := &model.Order{
		OrderID:       generateOrderID(),
		UserKey:       userKey,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Items:         items,
		TotalAmount:   total,
		Status:        model.OrderStatusConfirmed,
		OrderDate:     time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		logger.Error("Failed to create order", err, map[string]interface{}{
			"user_key":       session.CartKey(),
			"customer_email": customerEmail,
		})
		return nil, err
	}

	// Best effort: the order stands even if the cart fails to clear.
	if err := s.cartService.Clear(session); err != nil {
		logger.Warn("Order placed but cart clear failed", map[string]interface{}{
			"order_id": order.OrderID,
			"user_key": session.CartKey(),
			"error":    err.Error(),
		})
	}

	logger.Info("Order placed", map[string]interface{}{
		"order_id":     order.OrderID,
		"user_key":     session.CartKey(),
		"total_amount": order.TotalAmount,
		"item_count":   len(order.Items),
	})

	return &Receipt{
		Order:             *order,
		EstimatedDelivery: order.OrderDate.AddDate(0, 0, estimatedDeliveryDays),
		Message:           checkoutThanksMessage,
	}, nil
}

// GetOrders returns the session's order history, newest first
func (s *orderService) GetOrders(session model.Session) ([]model.Order, error) {
	var userKey *string
	if key, ok := session.UserKey(); ok {
		userKey = &key
	}

	orders, err := s.orderRepo.FindByUserKey(userKey)
	if err != nil {
		logger.Error("Failed to list orders", err, map[string]interface{}{
			"user_key": session.CartKey(),
		})
		return nil, err
	}
	return orders, nil
}

// generateOrderID builds an id like ORD-1735689600000-8F3KQ92XA. The millis
// timestamp plus nine random characters makes collisions practically
// impossible without a database round trip.
func generateOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), util.RandomAlphanumeric(9))
}
