package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/model"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/repository"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/service"
	"github.com/vibecommerce/vibecommerce-backend/internal/db"
)

func setupOrderControllerTest(t *testing.T) *gin.Engine {
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

	cartRepo := repository.NewCartRepository(database)
	productRepo := repository.NewProductRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	cartService := service.NewCartService(database, cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, cartService)
	ctrl := NewOrderController(orderService)

	engine := gin.New()
	engine.POST("/api/orders/checkout", ctrl.Checkout)
	engine.GET("/api/orders/user/:userId", ctrl.GetUserOrders)
	return engine
}

func checkoutBody(userID string) gin.H {
	body := gin.H{
		"customerName":  "Alice Johnson",
		"customerEmail": "alice@example.com",
		"cartItems": []gin.H{
			{"productId": 1, "name": "Wireless Headphones", "price": 10.00, "quantity": 2},
			{"productId": 2, "name": "Fitness Watch", "price": 5.50, "quantity": 1},
		},
	}
	if userID != "" {
		body["userId"] = userID
	}
	return body
}

func TestCheckoutEndpoint(t *testing.T) {
	engine := setupOrderControllerTest(t)

	w := performJSON(t, engine, http.MethodPost, "/api/orders/checkout", checkoutBody("user-1"))
	require.Equal(t, http.StatusCreated, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, 25.5, data["totalAmount"])
	assert.Equal(t, "confirmed", data["status"])
	assert.Equal(t, "user-1", data["userId"])
	assert.Regexp(t, `^ORD-\d{13}-[0-9A-Z]{9}$`, data["orderId"])
	assert.NotEmpty(t, data["estimatedDelivery"])
	assert.NotEmpty(t, data["message"])
	assert.Len(t, data["items"], 2)
}

func TestCheckoutGuestOmitsUserID(t *testing.T) {
	engine := setupOrderControllerTest(t)

	w := performJSON(t, engine, http.MethodPost, "/api/orders/checkout", checkoutBody(""))
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.NotContains(t, data, "userId")
}

func TestCheckoutValidationEndpoint(t *testing.T) {
	engine := setupOrderControllerTest(t)

	// Missing customer fields.
	w := performJSON(t, engine, http.MethodPost, "/api/orders/checkout", gin.H{
		"cartItems": []gin.H{{"productId": 1, "name": "x", "price": 1.0, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Empty cart.
	w = performJSON(t, engine, http.MethodPost, "/api/orders/checkout", gin.H{
		"customerName": "Alice", "customerEmail": "alice@example.com", "cartItems": []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserOrdersEndpoint(t *testing.T) {
	engine := setupOrderControllerTest(t)

	w := performJSON(t, engine, http.MethodGet, "/api/orders/user/user-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, 0.0, envelope["count"])

	performJSON(t, engine, http.MethodPost, "/api/orders/checkout", checkoutBody("user-1"))

	w = performJSON(t, engine, http.MethodGet, "/api/orders/user/user-1", nil)
	envelope = decodeEnvelope(t, w)
	assert.Equal(t, 1.0, envelope["count"])

	orders := envelope["data"].([]interface{})
	require.Len(t, orders, 1)
	assert.Equal(t, 25.5, orders[0].(map[string]interface{})["totalAmount"])
}
