package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/artisanlearn/storefront-api/backend"
	"github.com/artisanlearn/storefront-api/cartstore"
	"github.com/artisanlearn/storefront-api/checkout"
	checkoutControllers "github.com/artisanlearn/storefront-api/controllers/checkout"
	"github.com/artisanlearn/storefront-api/querycache"
	"github.com/artisanlearn/storefront-api/routes"
)

func main() {
	log.Println("✅ Starting storefront API...")

	// Load environment variables
	_ = godotenv.Load()

	// External service clients
	ledger := backend.NewLedgerClient(requireEnv("LEDGER_SERVICE_URL"))
	catalog := backend.NewCatalogClient(requireEnv("CATALOG_SERVICE_URL"))
	gateway := backend.NewGatewayClient(requireEnv("GATEWAY_SERVICE_URL"))
	profiles := backend.NewProfileClient(requireEnv("PROFILE_SERVICE_URL"))

	// Process-local state: carts and the query cache both die with the
	// process. Durable state lives behind the services above.
	carts := cartstore.New()
	cache := querycache.New()

	reconciler := checkout.NewReconciler(carts, ledger, gateway, cache)
	hub := checkoutControllers.NewHub()
	reconciler.OnCompleted(hub.Broadcast)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Carts:      carts,
		Catalog:    catalog,
		Ledger:     ledger,
		Gateway:    gateway,
		Profiles:   profiles,
		Cache:      cache,
		Reconciler: reconciler,
		Hub:        hub,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("❌ %s is not set", key)
	}
	return v
}
