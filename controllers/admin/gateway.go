package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artisanlearn/storefront-api/backend"
	"github.com/artisanlearn/storefront-api/models"
	"github.com/artisanlearn/storefront-api/querycache"
)

// GET /admin/gateway/status
func GatewayStatus(gateway *backend.GatewayClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		configured, err := gateway.IsConfigured(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to query payment gateway"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"configured": configured})
	}
}

// PUT /admin/gateway/config
func SetGatewayConfig(gateway *backend.GatewayClient, cache *querycache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cfg models.GatewayConfiguration
		if err := c.ShouldBindJSON(&cfg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if cfg.SecretKey == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "secret_key is required"})
			return
		}

		if err := gateway.SetConfiguration(c.Request.Context(), cfg); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		cache.Invalidate(querycache.KeyStripeConfigured)
		c.JSON(http.StatusOK, gin.H{"message": "Gateway configuration saved"})
	}
}
