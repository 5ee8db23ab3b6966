package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/service"
	apperrors "github.com/vibecommerce/vibecommerce-backend/internal/errors"
)

// OrderController handles checkout and order history endpoints
type OrderController struct {
	orderService service.OrderService
}

// NewOrderController creates a new order controller
func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

type checkoutItemRequest struct {
	ProductID int     `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
}

type checkoutRequest struct {
	UserID        string                `json:"userId"`
	CustomerName  string                `json:"customerName" binding:"required"`
	CustomerEmail string                `json:"customerEmail" binding:"required,email"`
	CartItems     []checkoutItemRequest `json:"cartItems" binding:"required,min=1,dive"`
}

// Checkout handles POST /api/orders/checkout
func (ctrl *OrderController) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed,
			"customerName, customerEmail and a non-empty cartItems are required")
		return
	}

	items := make([]model.OrderItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		items = append(items, model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			ImageURL:  item.Image,
			Quantity:  item.Quantity,
		})
	}

	session := model.UserSession(req.UserID)
	receipt, err := ctrl.orderService.Checkout(session, req.CustomerName, req.CustomerEmail, items)
	if err != nil {
		if errors.Is(err, service.ErrMissingCustomerInfo) || errors.Is(err, service.ErrEmptyCheckout) {
			apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed, err.Error())
			return
		}
		apperrors.RespondInternal(c, "Failed to place order")
		return
	}

	respondMessage(c, http.StatusCreated, "Order placed successfully", receipt)
}

// GetUserOrders handles GET /api/orders/user/:userId
func (ctrl *OrderController) GetUserOrders(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed, "userId is required")
		return
	}

	session := model.UserSession(userID)
	orders, err := ctrl.orderService.GetOrders(session)
	if err != nil {
		apperrors.RespondInternal(c, "Failed to fetch orders")
		return
	}

	respondList(c, orders, len(orders))
}
