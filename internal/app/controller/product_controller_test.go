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

func setupProductControllerTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	products := []model.Product{
		{ProductID: 1, Name: "Wireless Headphones", Price: 299.99, Category: "Electronics",
			Rating: model.Rating{Rate: 4.8, Count: 342}},
		{ProductID: 2, Name: "Fitness Watch", Price: 249.99, Category: "Wearables",
			Rating: model.Rating{Rate: 4.6, Count: 289}},
	}
	require.NoError(t, database.Create(&products).Error)

	productService := service.NewProductService(repository.NewProductRepository(database), nil)
	ctrl := NewProductController(productService)

	engine := gin.New()
	engine.GET("/api/products", ctrl.ListProducts)
	engine.GET("/api/products/:id", ctrl.GetProduct)
	return engine
}

func TestListProductsEndpoint(t *testing.T) {
	engine := setupProductControllerTest(t)

	w := performJSON(t, engine, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])
	assert.Equal(t, 2.0, envelope["count"])

	products := envelope["data"].([]interface{})
	first := products[0].(map[string]interface{})
	assert.Equal(t, 1.0, first["id"])
	assert.Equal(t, "Wireless Headphones", first["name"])

	rating := first["rating"].(map[string]interface{})
	assert.Equal(t, 4.8, rating["rate"])
	assert.Equal(t, 342.0, rating["count"])
}

func TestGetProductEndpoint(t *testing.T) {
	engine := setupProductControllerTest(t)

	w := performJSON(t, engine, http.MethodGet, "/api/products/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Fitness Watch", data["name"])

	w = performJSON(t, engine, http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(t, engine, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
