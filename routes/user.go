package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/artisanlearn/storefront-api/controllers/cart"
	checkoutControllers "github.com/artisanlearn/storefront-api/controllers/checkout"
	storeControllers "github.com/artisanlearn/storefront-api/controllers/store"
	walletControllers "github.com/artisanlearn/storefront-api/controllers/wallet"
	"github.com/artisanlearn/storefront-api/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/profile", walletControllers.GetProfile(deps.Profiles, deps.Cache))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(deps.Carts))
			cartGroup.POST("/", cartControllers.AddToCart(deps.Carts, deps.Catalog))
			cartGroup.PATCH("/:product_id", cartControllers.UpdateQuantity(deps.Carts))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveItem(deps.Carts))
			cartGroup.DELETE("/", cartControllers.ClearCart(deps.Carts))
			cartGroup.GET("/count", cartControllers.GetItemCount(deps.Carts))
		}

		// ──────────────── Checkout ────────────────
		checkoutGroup := userGroup.Group("/checkout")
		{
			checkoutGroup.POST("/card", checkoutControllers.CardCheckout(deps.Reconciler))
			checkoutGroup.POST("/tokens", checkoutControllers.TokenCheckout(deps.Reconciler))
			checkoutGroup.POST("/confirm", checkoutControllers.ConfirmCardPayment(deps.Reconciler))
			checkoutGroup.POST("/cancel", checkoutControllers.CancelCardPayment())
			checkoutGroup.GET("/availability", checkoutControllers.Availability(deps.Gateway, deps.Cache))
		}

		// ──────────────── Wallet ────────────────
		walletGroup := userGroup.Group("/wallet")
		{
			walletGroup.GET("/balance", walletControllers.GetBalance(deps.Ledger, deps.Cache))
			walletGroup.GET("/transactions", walletControllers.GetTransactions(deps.Ledger, deps.Cache))
			walletGroup.POST("/transfer", walletControllers.TransferTokens(deps.Ledger, deps.Cache))
		}

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", storeControllers.GetProducts(deps.Catalog, deps.Cache))
		userGroup.GET("/products/:id", storeControllers.GetProductByID(deps.Catalog))
	}
}
