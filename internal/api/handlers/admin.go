package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxdrop/storefront/internal/repository"
)

// AdminStatsResponse is the dashboard statistics payload
type AdminStatsResponse struct {
	TotalProducts int     `json:"total_products"`
	TotalOrders   int     `json:"total_orders"`
	PendingOrders int     `json:"pending_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// HandleAdminStats handles GET /api/admin/stats (admin)
func HandleAdminStats(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		totalProducts, err := repos.Product.Count(c.Request.Context())
		if err != nil {
			logger.Error("Failed to count products", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		orderStats, err := repos.Order.Stats(c.Request.Context())
		if err != nil {
			logger.Error("Failed to load order stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, AdminStatsResponse{
			TotalProducts: totalProducts,
			TotalOrders:   orderStats.TotalOrders,
			PendingOrders: orderStats.PendingOrders,
			TotalRevenue:  orderStats.TotalRevenue,
		})
	}
}
