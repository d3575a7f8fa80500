package walletControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artisanlearn/storefront-api/backend"
	"github.com/artisanlearn/storefront-api/models"
	"github.com/artisanlearn/storefront-api/querycache"
)

type TransferInput struct {
	To          string `json:"to" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,min=1"`
	Description string `json:"description"`
}

type MintInput struct {
	Recipient   string `json:"recipient" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,min=1"`
	Description string `json:"description"`
}

func currentUserID(c *gin.Context) (string, bool) {
	uid, ok := c.Get("user_id")
	if !ok {
		return "", false
	}
	id, ok := uid.(string)
	return id, ok && id != ""
}

// GET /user/wallet/balance
func GetBalance(ledger *backend.LedgerClient, cache *querycache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if v, ok := cache.Get(querycache.KeyTokenBalance, userID); ok {
			c.JSON(http.StatusOK, gin.H{"balance": v.(int64)})
			return
		}

		balance, err := ledger.Balance(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch balance"})
			return
		}

		cache.Set(querycache.KeyTokenBalance, userID, balance)
		c.JSON(http.StatusOK, gin.H{"balance": balance})
	}
}

// GET /user/wallet/transactions
func GetTransactions(ledger *backend.LedgerClient, cache *querycache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if v, ok := cache.Get(querycache.KeyTransactionHistory, userID); ok {
			c.JSON(http.StatusOK, v.([]models.TokenTransaction))
			return
		}

		history, err := ledger.TransactionHistory(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch transaction history"})
			return
		}

		cache.Set(querycache.KeyTransactionHistory, userID, history)
		c.JSON(http.StatusOK, history)
	}
}

// GET /user/profile
func GetProfile(profiles *backend.ProfileClient, cache *querycache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if v, ok := cache.Get(querycache.KeyCurrentUserProfile, userID); ok {
			c.JSON(http.StatusOK, v.(models.UserProfile))
			return
		}

		profile, err := profiles.GetProfile(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch profile"})
			return
		}

		cache.Set(querycache.KeyCurrentUserProfile, userID, profile)
		c.JSON(http.StatusOK, profile)
	}
}

// POST /user/wallet/transfer
func TransferTokens(ledger *backend.LedgerClient, cache *querycache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input TransferInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := ledger.TransferTokens(c.Request.Context(), userID, input.To, input.Amount, input.Description); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		cache.Invalidate(querycache.KeyTokenBalance, querycache.KeyTransactionHistory)
		c.JSON(http.StatusOK, gin.H{"message": "Transfer completed"})
	}
}

// POST /admin/tokens/mint
func MintTokens(ledger *backend.LedgerClient, cache *querycache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MintInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := ledger.MintTokens(c.Request.Context(), input.Recipient, input.Amount, input.Description); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		cache.Invalidate(querycache.KeyTokenBalance, querycache.KeyTransactionHistory)
		c.JSON(http.StatusOK, gin.H{"message": "Tokens minted"})
	}
}
