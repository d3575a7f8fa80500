package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisanlearn/storefront-api/models"
)

func TestLedgerClient_Balance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/balance/user-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]int64{"balance": 120})
	}))
	defer srv.Close()

	balance, err := NewLedgerClient(srv.URL).Balance(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(120), balance)
}

func TestLedgerClient_SpendTokens(t *testing.T) {
	var got spendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/spend", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewLedgerClient(srv.URL).SpendTokens(context.Background(), "user-1", 70, "Purchase: 1x Mug")
	require.NoError(t, err)
	assert.Equal(t, spendRequest{UserID: "user-1", Amount: 70, Description: "Purchase: 1x Mug"}, got)
}

func TestLedgerClient_SurfacesBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Insufficient balance"})
	}))
	defer srv.Close()

	err := NewLedgerClient(srv.URL).SpendTokens(context.Background(), "user-1", 70, "Purchase")
	require.Error(t, err)
	// the raw backend message stays in the error for substring matching
	assert.Contains(t, err.Error(), "Insufficient balance")
}

func TestGatewayClient_CreateCheckoutSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sessions", r.URL.Path)

		var req createSessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://shop.example.com/payment-success", req.SuccessURL)
		assert.Equal(t, "https://shop.example.com/payment-failure", req.CancelURL)
		require.Len(t, req.Items, 1)
		assert.Equal(t, int64(2999), req.Items[0].PriceInCents)

		json.NewEncoder(w).Encode(models.CheckoutSession{ID: "cs_1", URL: "https://pay.example.com/cs_1"})
	}))
	defer srv.Close()

	items := []models.LineItem{{
		ProductName:  "Walnut Bowl",
		PriceInCents: 2999,
		Quantity:     1,
		Currency:     "usd",
	}}

	session, err := NewGatewayClient(srv.URL).CreateCheckoutSession(context.Background(), items,
		"https://shop.example.com/payment-success",
		"https://shop.example.com/payment-failure")
	require.NoError(t, err)
	assert.Equal(t, "cs_1", session.ID)
	assert.Equal(t, "https://pay.example.com/cs_1", session.URL)
}

func TestGatewayClient_RejectsMissingRedirectURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.CheckoutSession{ID: "cs_1"})
	}))
	defer srv.Close()

	_, err := NewGatewayClient(srv.URL).CreateCheckoutSession(context.Background(), nil, "s", "c")
	assert.ErrorIs(t, err, ErrMissingRedirectURL)
}

func TestGatewayClient_IsConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/configured", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{"configured": true})
	}))
	defer srv.Close()

	configured, err := NewGatewayClient(srv.URL).IsConfigured(context.Background())
	require.NoError(t, err)
	assert.True(t, configured)
}

func TestCatalogClient_ListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Product{
			{ID: "a", Name: "Walnut Bowl", Price: 2999, Inventory: 5},
		})
	}))
	defer srv.Close()

	products, err := NewCatalogClient(srv.URL).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Walnut Bowl", products[0].Name)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream blew up", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewCatalogClient(srv.URL).ListProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream blew up")
}
