package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vibecommerce/vibecommerce-backend/config"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/controller"
	"github.com/vibecommerce/vibecommerce-backend/internal/middleware"
)

// Controllers groups everything the router mounts
type Controllers struct {
	Product *controller.ProductController
	Cart    *controller.CartController
	Order   *controller.OrderController
	Auth    *controller.AuthController
}

// Setup builds the Gin engine with all routes and middleware
func Setup(cfg *config.Config, ctrls Controllers) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.CORS(&cfg.CORS))
	engine.Use(middleware.OptionalAuth(&cfg.JWT))

	api := engine.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success":   true,
				"message":   "Server is running",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		api.GET("/products", ctrls.Product.ListProducts)
		api.GET("/products/:id", ctrls.Product.GetProduct)

		cart := api.Group("/cart")
		{
			cart.GET("", ctrls.Cart.GetCart)
			cart.POST("", ctrls.Cart.AddItem)
			cart.DELETE("", ctrls.Cart.Clear)
			cart.PUT("/:id", ctrls.Cart.UpdateQuantity)
			cart.DELETE("/:id", ctrls.Cart.RemoveItem)
		}

		orders := api.Group("/orders")
		{
			orders.POST("/checkout", ctrls.Order.Checkout)
			orders.GET("/user/:userId", ctrls.Order.GetUserOrders)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", ctrls.Auth.Register)
			auth.POST("/login", ctrls.Auth.Login)
			auth.GET("/profile/:userId", ctrls.Auth.GetProfile)
			auth.GET("/wishlist/:userId", ctrls.Auth.GetWishlist)
			auth.POST("/wishlist/:userId/:productId", ctrls.Auth.AddToWishlist)
			auth.DELETE("/wishlist/:userId/:productId", ctrls.Auth.RemoveFromWishlist)
		}
	}

	return engine
}
