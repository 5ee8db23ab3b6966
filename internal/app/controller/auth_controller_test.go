package controller

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecommerce/vibecommerce-backend/config"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/repository"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/service"
	"github.com/vibecommerce/vibecommerce-backend/internal/db"
)

func setupAuthControllerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	products := []model.Product{
		{ProductID: 1, Name: "Wireless Headphones", Price: 10.00},
		{ProductID: 2, Name: "Fitness Watch", Price: 5.50},
	}
	require.NoError(t, database.Create(&products).Error)

	jwtCfg := &config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}

	userRepo := repository.NewUserRepository(database)
	productRepo := repository.NewProductRepository(database)
	authService := service.NewAuthService(userRepo, service.PlaintextVerifier{}, jwtCfg)
	wishlistService := service.NewWishlistService(userRepo, productRepo)
	ctrl := NewAuthController(authService, wishlistService)

	engine := gin.New()
	engine.POST("/api/auth/register", ctrl.Register)
	engine.POST("/api/auth/login", ctrl.Login)
	engine.GET("/api/auth/profile/:userId", ctrl.GetProfile)
	engine.GET("/api/auth/wishlist/:userId", ctrl.GetWishlist)
	engine.POST("/api/auth/wishlist/:userId/:productId", ctrl.AddToWishlist)
	engine.DELETE("/api/auth/wishlist/:userId/:productId", ctrl.RemoveFromWishlist)
	return engine
}

func registerTestUser(t *testing.T, engine *gin.Engine) float64 {
	t.Helper()
	w := performJSON(t, engine, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Alice Johnson", "email": "alice@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	return data["id"].(float64)
}

func TestRegisterEndpoint(t *testing.T) {
	engine := setupAuthControllerTest(t)

	w := performJSON(t, engine, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Alice Johnson", "email": "alice@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", data["email"])
	assert.NotContains(t, data, "password")
	assert.Contains(t, data["avatar"], "ui-avatars.com")

	tokens := envelope["tokens"].(map[string]interface{})
	assert.NotEmpty(t, tokens["accessToken"])
	assert.NotEmpty(t, tokens["refreshToken"])
}

func TestRegisterValidation(t *testing.T) {
	engine := setupAuthControllerTest(t)

	// Short password.
	w := performJSON(t, engine, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Alice", "email": "alice@example.com", "password": "12345",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email.
	w = performJSON(t, engine, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Alice", "email": "not-an-email", "password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	engine := setupAuthControllerTest(t)
	registerTestUser(t, engine)

	w := performJSON(t, engine, http.MethodPost, "/api/auth/register", gin.H{
		"name": "Other", "email": "ALICE@example.com", "password": "password456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, decodeEnvelope(t, w)["success"])
}

func TestLoginEndpoint(t *testing.T) {
	engine := setupAuthControllerTest(t)
	registerTestUser(t, engine)

	w := performJSON(t, engine, http.MethodPost, "/api/auth/login", gin.H{
		"email": "alice@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])
	assert.NotEmpty(t, envelope["tokens"])

	w = performJSON(t, engine, http.MethodPost, "/api/auth/login", gin.H{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileEndpoint(t *testing.T) {
	engine := setupAuthControllerTest(t)
	userID := registerTestUser(t, engine)

	w := performJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/auth/profile/%.0f", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Alice Johnson", data["name"])

	w = performJSON(t, engine, http.MethodGet, "/api/auth/profile/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(t, engine, http.MethodGet, "/api/auth/profile/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWishlistEndpoints(t *testing.T) {
	engine := setupAuthControllerTest(t)
	userID := registerTestUser(t, engine)
	base := fmt.Sprintf("/api/auth/wishlist/%.0f", userID)

	w := performJSON(t, engine, http.MethodPost, base+"/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{1.0}, data["wishlist"])

	// Duplicate add conflicts.
	w = performJSON(t, engine, http.MethodPost, base+"/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown product.
	w = performJSON(t, engine, http.MethodPost, base+"/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Listing joins the live catalog.
	w = performJSON(t, engine, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, 1.0, envelope["count"])
	products := envelope["data"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "Wireless Headphones", products[0].(map[string]interface{})["name"])

	// Remove twice; both succeed.
	w = performJSON(t, engine, http.MethodDelete, base+"/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = performJSON(t, engine, http.MethodDelete, base+"/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
