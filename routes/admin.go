package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/artisanlearn/storefront-api/controllers/admin"
	storeControllers "github.com/artisanlearn/storefront-api/controllers/store"
	walletControllers "github.com/artisanlearn/storefront-api/controllers/wallet"
	"github.com/artisanlearn/storefront-api/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Payment Gateway ───────────
		gatewayAdmin := adminGroup.Group("/gateway")
		{
			gatewayAdmin.GET("/status", adminControllers.GatewayStatus(deps.Gateway))
			gatewayAdmin.PUT("/config", adminControllers.SetGatewayConfig(deps.Gateway, deps.Cache))
		}

		// ─────────── Token Ledger ───────────
		tokenAdmin := adminGroup.Group("/tokens")
		{
			tokenAdmin.POST("/mint", walletControllers.MintTokens(deps.Ledger, deps.Cache))
		}

		// ─────────── Catalog Export ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("/export-excel", storeControllers.ExportProductsToExcel(deps.Catalog))
		}
	}
}
