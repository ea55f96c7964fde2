package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxdrop/storefront/internal/api/handlers"
	"github.com/luxdrop/storefront/internal/api/middleware"
	"github.com/luxdrop/storefront/internal/config"
	"github.com/luxdrop/storefront/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Catalog (public, read-only)
		api.GET("/products", handlers.HandleListProducts(repos, logger))
		api.GET("/products/featured/list", handlers.HandleFeaturedProducts(repos, logger))
		api.GET("/products/:id", handlers.HandleGetProduct(repos, logger))
		api.GET("/categories", handlers.HandleListCategories(repos, logger))

		// Orders (public: the storefront has no accounts)
		api.POST("/orders", handlers.HandleCreateOrder(repos, logger))
		api.GET("/orders", handlers.HandleListOrders(repos, logger))
		api.GET("/orders/:id", handlers.HandleGetOrder(repos, logger))

		// Admin routes
		adminRoutes := api.Group("")
		adminRoutes.Use(middleware.AdminAuthMiddleware(cfg, logger))
		{
			adminRoutes.POST("/products", handlers.HandleCreateProduct(repos, logger))
			adminRoutes.POST("/categories", handlers.HandleCreateCategory(repos, logger))
			adminRoutes.PATCH("/orders/:id/status", handlers.HandleUpdateOrderStatus(repos, logger))
			adminRoutes.GET("/admin/stats", handlers.HandleAdminStats(repos, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
