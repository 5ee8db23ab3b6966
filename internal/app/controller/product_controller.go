package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/service"
	apperrors "github.com/vibecommerce/vibecommerce-backend/internal/errors"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
)

// ProductController handles catalog endpoints
type ProductController struct {
	productService service.ProductService
}

// NewProductController creates a new product controller
func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// ListProducts handles GET /api/products
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	products, err := ctrl.productService.ListProducts()
	if err != nil {
		apperrors.RespondInternal(c, "Failed to fetch products")
		return
	}
	respondList(c, products, len(products))
}

// GetProduct handles GET /api/products/:id
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		apperrors.Respond(c, http.StatusBadRequest, apperrors.CodeValidationFailed, "Product id must be an integer")
		return
	}

	product, err := ctrl.productService.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.Respond(c, http.StatusNotFound, apperrors.CodeProductNotFound, "Product not found")
			return
		}
		logger.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": productID,
		})
		apperrors.RespondInternal(c, "Failed to fetch product")
		return
	}

	respondData(c, http.StatusOK, product)
}
