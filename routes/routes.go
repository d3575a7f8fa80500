package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/artisanlearn/storefront-api/backend"
	"github.com/artisanlearn/storefront-api/cartstore"
	"github.com/artisanlearn/storefront-api/checkout"
	checkoutControllers "github.com/artisanlearn/storefront-api/controllers/checkout"
	"github.com/artisanlearn/storefront-api/querycache"
)

// Deps bundles everything the route groups wire into handlers.
type Deps struct {
	Carts      *cartstore.Store
	Catalog    *backend.CatalogClient
	Ledger     *backend.LedgerClient
	Gateway    *backend.GatewayClient
	Profiles   *backend.ProfileClient
	Cache      *querycache.Cache
	Reconciler *checkout.Reconciler
	Hub        *checkoutControllers.Hub
}

// SetupRoutes is the single entry‐point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r)

	// 2️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, deps)

	// 3️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, deps)

	// checkout event feed
	SetupCheckoutFeed(r, deps)
}
