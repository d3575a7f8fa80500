package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisanlearn/storefront-api/backend"
	"github.com/artisanlearn/storefront-api/cartstore"
	"github.com/artisanlearn/storefront-api/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *cartstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/products/")
		if id == "missing" {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "product not found"})
			return
		}
		json.NewEncoder(w).Encode(models.Product{
			ID:        id,
			Name:      "Product " + id,
			Price:     4999,
			Inventory: 3,
		})
	}))
	t.Cleanup(catalogSrv.Close)

	store := cartstore.New()
	catalog := backend.NewCatalogClient(catalogSrv.URL)

	r := gin.New()
	// stand-in for the JWT middleware
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Set("role", "user")
		c.Set("session_id", "sess-1")
	})

	cart := r.Group("/user/cart")
	{
		cart.GET("/", GetCart(store))
		cart.POST("/", AddToCart(store, catalog))
		cart.PATCH("/:product_id", UpdateQuantity(store))
		cart.DELETE("/:product_id", RemoveItem(store))
		cart.DELETE("/", ClearCart(store))
		cart.GET("/count", GetItemCount(store))
	}
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartHandler(t *testing.T) {
	r, store := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/user/cart/", `{"product_id":"p1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	items := store.Items("sess-1")
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, int64(4999), items[0].Product.Price)
	assert.Equal(t, int64(1), items[0].Quantity)

	// adding again merges into the same line
	doJSON(t, r, http.MethodPost, "/user/cart/", `{"product_id":"p1"}`)
	items = store.Items("sess-1")
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Quantity)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	r, store := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/user/cart/", `{"product_id":"missing"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, store.Items("sess-1"))
}

func TestUpdateQuantity_DeltaAndAbsolute(t *testing.T) {
	r, store := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/user/cart/", `{"product_id":"p1"}`)

	w := doJSON(t, r, http.MethodPatch, "/user/cart/p1", `{"delta":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), store.ItemCount("sess-1"))

	// absolute target is clamped to the snapshot inventory of 3
	w = doJSON(t, r, http.MethodPatch, "/user/cart/p1", `{"quantity":9}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), store.ItemCount("sess-1"))

	// dropping to zero removes the line
	w = doJSON(t, r, http.MethodPatch, "/user/cart/p1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Items("sess-1"))
}

func TestUpdateQuantity_RejectsAmbiguousInput(t *testing.T) {
	r, _ := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/user/cart/", `{"product_id":"p1"}`)

	w := doJSON(t, r, http.MethodPatch, "/user/cart/p1", `{"delta":1,"quantity":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/user/cart/p1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveAndClear(t *testing.T) {
	r, store := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/user/cart/", `{"product_id":"p1"}`)
	doJSON(t, r, http.MethodPost, "/user/cart/", `{"product_id":"p2"}`)

	w := doJSON(t, r, http.MethodDelete, "/user/cart/p1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.Items("sess-1"), 1)

	w = doJSON(t, r, http.MethodDelete, "/user/cart/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Items("sess-1"))
}

func TestGetCartIncludesTotals(t *testing.T) {
	r, _ := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/user/cart/", `{"product_id":"p1"}`)
	doJSON(t, r, http.MethodPost, "/user/cart/", `{"product_id":"p1"}`)

	w := doJSON(t, r, http.MethodGet, "/user/cart/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count  int64 `json:"count"`
		Totals struct {
			TotalCents  int64 `json:"total_cents"`
			TotalTokens int64 `json:"total_tokens"`
			BonusTokens int64 `json:"bonus_tokens"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Count)
	assert.Equal(t, int64(9998), resp.Totals.TotalCents)
	assert.Equal(t, int64(100), resp.Totals.TotalTokens)
	assert.Equal(t, int64(5), resp.Totals.BonusTokens)
}
