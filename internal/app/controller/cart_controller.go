package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/service"
	apperrors "github.com/vibecommerce/vibecommerce-backend/internal/errors"
)

// CartController handles cart endpoints. Identity arrives as an explicit
// userId parameter; its absence means the shared guest cart.
type CartController struct {
	cartService service.CartService
}

// NewCartController creates a new cart controller
func NewCartController(cartService service.CartService) *CartController {
	return &CartController{cartService: cartService}
}

type addItemRequest struct {
	UserID    string `json:"userId"`
	ProductID *int   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	UserID   string `json:"userId"`
	Quantity *int   `json:"quantity" binding:"required"`
}

// GetCart handles GET /api/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	session := model.UserSession(c.Query("userId"))

	cart, err := ctrl.cartService.GetCart(session)
	if err != nil {
		apperrors.RespondInternal(c, "Failed to fetch cart")
		return
	}
	respondData(c, http.StatusOK, cart)
}

// AddItem handles POST /api/cart
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed, "productId is required")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed, "Quantity must be at least 1")
		return
	}

	session := model.UserSession(req.UserID)
	cart, err := ctrl.cartService.AddItem(session, *req.ProductID, quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.Respond(c, http.StatusNotFound, apperrors.CodeProductNotFound, "Product not found")
			return
		}
		apperrors.RespondInternal(c, "Failed to add item to cart")
		return
	}

	respondMessage(c, http.StatusOK, "Item added to cart", cart)
}

// UpdateQuantity handles PUT /api/cart/:id
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed, "Product id must be an integer")
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed, "quantity is required")
		return
	}
	if *req.Quantity < 1 {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed, "Quantity must be at least 1")
		return
	}

	session := model.UserSession(req.UserID)
	cart, err := ctrl.cartService.UpdateQuantity(session, productID, *req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartNotFound):
			apperrors.Respond(c, http.StatusNotFound, apperrors.CodeCartNotFound, "Cart not found")
		case errors.Is(err, service.ErrItemNotFound):
			apperrors.Respond(c, http.StatusNotFound, apperrors.CodeItemNotFound, "Item not found in cart")
		default:
			apperrors.RespondInternal(c, "Failed to update cart item")
		}
		return
	}

	respondMessage(c, http.StatusOK, "Cart updated", cart)
}

// RemoveItem handles DELETE /api/cart/:id. Removing an item that is not in
// the cart succeeds; only a missing cart is a 404.
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed, "Product id must be an integer")
		return
	}

	session := model.UserSession(c.Query("userId"))
	cart, err := ctrl.cartService.RemoveItem(session, productID)
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			apperrors.Respond(c, http.StatusNotFound, apperrors.CodeCartNotFound, "Cart not found")
			return
		}
		apperrors.RespondInternal(c, "Failed to remove item from cart")
		return
	}

	respondMessage(c, http.StatusOK, "Item removed from cart", cart)
}

// Clear handles DELETE /api/cart
func (ctrl *CartController) Clear(c *gin.Context) {
	session := model.UserSession(c.Query("userId"))

	if err := ctrl.cartService.Clear(session); err != nil {
		apperrors.RespondInternal(c, "Failed to clear cart")
		return
	}

	respondMessage(c, http.StatusOK, "Cart cleared", nil)
}
