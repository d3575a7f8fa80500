package storeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artisanlearn/storefront-api/backend"
	"github.com/artisanlearn/storefront-api/models"
	"github.com/artisanlearn/storefront-api/querycache"
)

// GET /user/products
func GetProducts(catalog *backend.CatalogClient, cache *querycache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, ok := cache.Get(querycache.KeyProducts, ""); ok {
			c.JSON(http.StatusOK, v.([]models.Product))
			return
		}

		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}

		cache.Set(querycache.KeyProducts, "", products)
		c.JSON(http.StatusOK, products)
	}
}

// GET /user/products/:id
func GetProductByID(catalog *backend.CatalogClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
