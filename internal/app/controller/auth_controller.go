package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/service"
	apperrors "github.com/vibecommerce/vibecommerce-backend/internal/errors"
)

// AuthController handles registration, login, profile and wishlist endpoints
type AuthController struct {
	authService     service.AuthService
	wishlistService service.WishlistService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService service.AuthService, wishlistService service.WishlistService) *AuthController {
	return &AuthController{
		authService:     authService,
		wishlistService: wishlistService,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed,
			"name, a valid email and a password of at least 6 characters are required")
		return
	}

	result, err := ctrl.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Respond(c, http.StatusConflict, apperrors.CodeEmailTaken, "Email is already registered")
			return
		}
		apperrors.RespondInternal(c, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"data":    result.User,
		"tokens":  result.Tokens,
	})
}

// Login handles POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed,
			"email and password are required")
		return
	}

	result, err := ctrl.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.Respond(c, http.StatusUnauthorized, apperrors.CodeInvalidCredentials, "Invalid email or password")
			return
		}
		apperrors.RespondInternal(c, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    result.User,
		"tokens":  result.Tokens,
	})
}

// GetProfile handles GET /api/auth/profile/:userId
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID, ok := ctrl.parseUserID(c)
	if !ok {
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.Respond(c, http.StatusNotFound, apperrors.CodeUserNotFound, "User not found")
			return
		}
		apperrors.RespondInternal(c, "Failed to fetch profile")
		return
	}

	respondData(c, http.StatusOK, user)
}

// GetWishlist handles GET /api/auth/wishlist/:userId
func (ctrl *AuthController) GetWishlist(c *gin.Context) {
	userID, ok := ctrl.parseUserID(c)
	if !ok {
		return
	}

	products, err := ctrl.wishlistService.ListProducts(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.Respond(c, http.StatusNotFound, apperrors.CodeUserNotFound, "User not found")
			return
		}
		apperrors.RespondInternal(c, "Failed to fetch wishlist")
		return
	}

	respondList(c, products, len(products))
}

// AddToWishlist handles POST /api/auth/wishlist/:userId/:productId
func (ctrl *AuthController) AddToWishlist(c *gin.Context) {
	userID, ok := ctrl.parseUserID(c)
	if !ok {
		return
	}
	productID, ok := ctrl.parseProductID(c)
	if !ok {
		return
	}

	user, err := ctrl.wishlistService.Add(userID, productID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			apperrors.Respond(c, http.StatusNotFound, apperrors.CodeUserNotFound, "User not found")
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.Respond(c, http.StatusNotFound, apperrors.CodeProductNotFound, "Product not found")
		case errors.Is(err, service.ErrAlreadyInWishlist):
			apperrors.Respond(c, http.StatusConflict, apperrors.CodeAlreadyInWishlist, "Product is already in wishlist")
		default:
			apperrors.RespondInternal(c, "Failed to add to wishlist")
		}
		return
	}

	respondMessage(c, http.StatusOK, "Product added to wishlist", user)
}

// RemoveFromWishlist handles DELETE /api/auth/wishlist/:userId/:productId
func (ctrl *AuthController) RemoveFromWishlist(c *gin.Context) {
	userID, ok := ctrl.parseUserID(c)
	if !ok {
		return
	}
	productID, ok := ctrl.parseProductID(c)
	if !ok {
		return
	}

	user, err := ctrl.wishlistService.Remove(userID, productID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.Respond(c, http.StatusNotFound, apperrors.CodeUserNotFound, "User not found")
			return
		}
		apperrors.RespondInternal(c, "Failed to remove from wishlist")
		return
	}

	respondMessage(c, http.StatusOK, "Product removed from wishlist", user)
}

func (ctrl *AuthController) parseUserID(c *gin.Context) (uint, bool) {
	raw := c.Param("userId")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed, "userId must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func (ctrl *AuthController) parseProductID(c *gin.Context) (int, bool) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed, "productId must be an integer")
		return 0, false
	}
	return productID, true
}
