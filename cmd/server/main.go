package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vibecommerce/vibecommerce-backend/config"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/controller"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/repository"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/service"
	"github.com/vibecommerce/vibecommerce-backend/internal/db"
	"github.com/vibecommerce/vibecommerce-backend/internal/router"
	"github.com/vibecommerce/vibecommerce-backend/internal/scheduler"
	"github.com/vibecommerce/vibecommerce-backend/pkg/logger"
	"github.com/vibecommerce/vibecommerce-backend/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logFormat := "json"
	if cfg.Server.Environment == "development" {
		logFormat = "console"
	}
	logger.Initialize(logger.Config{
		Level:       "debug",
		Format:      logFormat,
		EnableColor: cfg.Server.Environment == "development",
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	if cfg.Seed.AutoSeedProducts {
		if err := db.SeedProducts(); err != nil {
			logger.Fatal("Failed to seed catalog", err)
		}
	}
	if cfg.Seed.AutoSeedUsers {
		if err := db.SeedUsers(); err != nil {
			logger.Fatal("Failed to seed demo users", err)
		}
	}

	// The cache is optional; the API works without it.
	if cfg.Redis.Host != "" {
		if err := redis.Initialize(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable, catalog cache disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
		}
	}

	gormDB := db.GetDB()
	productRepo := repository.NewProductRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	verifier := service.NewCredentialVerifier(cfg.Auth.CredentialMode)
	productService := service.NewProductService(productRepo, redis.GetClient())
	cartService := service.NewCartService(gormDB, cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, cartService)
	authService := service.NewAuthService(userRepo, verifier, &cfg.JWT)
	wishlistService := service.NewWishlistService(userRepo, productRepo)

	engine := router.Setup(cfg, router.Controllers{
		Product: controller.NewProductController(productService),
		Cart:    controller.NewCartController(cartService),
		Order:   controller.NewOrderController(orderService),
		Auth:    controller.NewAuthController(authService, wishlistService),
	})

	salesReporter := scheduler.NewSalesReportScheduler(orderRepo)
	if err := salesReporter.Start(); err != nil {
		logger.Fatal("Failed to start sales report scheduler", err)
	}
	defer salesReporter.Stop()

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	go func() {
		logger.Info("Server starting", map[string]interface{}{
			"port":        cfg.Server.Port,
			"environment": cfg.Server.Environment,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", err)
	}
	logger.Info("Server stopped")
}
