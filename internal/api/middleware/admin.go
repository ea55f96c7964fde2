package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/luxdrop/storefront/internal/config"
)

// AdminKeyHeader carries the admin API key on management requests
const AdminKeyHeader = "X-Admin-Key"

// AdminAuthMiddleware authenticates management requests against the bcrypt
// hash of the admin key. With no hash configured, admin routes are disabled.
func AdminAuthMiddleware(cfg *config.Config, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.API.AdminKeyHash == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access not configured"})
			return
		}

		key := c.GetHeader(AdminKeyHeader)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(cfg.API.AdminKeyHash), []byte(key)); err != nil {
			logger.Warn("Rejected admin request with invalid key", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
