package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artisanlearn/storefront-api/backend"
	"github.com/artisanlearn/storefront-api/cartstore"
	"github.com/artisanlearn/storefront-api/checkout"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateQuantityInput carries exactly one of Delta or Quantity. Delta is
// a signed adjustment; Quantity is an absolute target.
type UpdateQuantityInput struct {
	Delta    *int64 `json:"delta"`
	Quantity *int64 `json:"quantity"`
}

// sessionID resolves the cart key for the current request. Every
// session token carries one; user_id is the fallback for tokens minted
// before session ids existed.
func sessionID(c *gin.Context) (string, bool) {
	if sid, ok := c.Get("session_id"); ok {
		if s, ok := sid.(string); ok && s != "" {
			return s, true
		}
	}
	if uid, ok := c.Get("user_id"); ok {
		if s, ok := uid.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// GET /user/cart
func GetCart(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		items := store.Items(sid)
		c.JSON(http.StatusOK, gin.H{
			"items":  items,
			"count":  store.ItemCount(sid),
			"totals": checkout.ComputeTotals(items),
		})
	}
}

// POST /user/cart
// Adds one unit of the product, snapshotting it from the catalog. No
// inventory check here; quantity adjustment is where clamping happens.
func AddToCart(store *cartstore.Store, catalog *backend.CatalogClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := catalog.GetProduct(c.Request.Context(), input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to validate product"})
			return
		}

		store.AddToCart(sid, product)
		c.JSON(http.StatusCreated, gin.H{"count": store.ItemCount(sid)})
	}
}

// PATCH /user/cart/:product_id
func UpdateQuantity(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID := c.Param("product_id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if (input.Delta == nil) == (input.Quantity == nil) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Provide exactly one of delta or quantity"})
			return
		}

		if input.Delta != nil {
			store.AdjustQuantity(sid, productID, *input.Delta)
		} else {
			store.SetQuantity(sid, productID, clampToInventory(store, sid, productID, *input.Quantity))
		}

		c.JSON(http.StatusOK, gin.H{
			"items": store.Items(sid),
			"count": store.ItemCount(sid),
		})
	}
}

// clampToInventory caps an absolute quantity at the stock recorded in
// the line's product snapshot.
func clampToInventory(store *cartstore.Store, sid, productID string, quantity int64) int64 {
	for _, item := range store.Items(sid) {
		if item.Product.ID == productID && item.Product.Inventory > 0 && quantity > item.Product.Inventory {
			return item.Product.Inventory
		}
	}
	return quantity
}

// DELETE /user/cart/:product_id
func RemoveItem(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		store.RemoveItem(sid, c.Param("product_id"))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted", "count": store.ItemCount(sid)})
	}
}

// DELETE /user/cart
func ClearCart(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		store.ClearCart(sid)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart/count
func GetItemCount(store *cartstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": store.ItemCount(sid)})
	}
}
