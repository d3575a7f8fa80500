package checkout

import (
	"fmt"
	"strings"

	"github.com/artisanlearn/storefront-api/models"
)

const (
	// CentsPerToken is the fixed token exchange rate applied at checkout.
	CentsPerToken = 100

	// bonusPercent is the loyalty bonus, informational only; minting is
	// the ledger's business.
	bonusPercent = 5

	checkoutCurrency = "usd"
)

// Totals holds the dual-currency checkout figures. All values are
// integers; display formatting never feeds back into these.
type Totals struct {
	TotalCents  int64 `json:"total_cents"`
	TotalTokens int64 `json:"total_tokens"`
	BonusTokens int64 `json:"bonus_tokens"`
}

// ComputeTotals derives the checkout totals from a cart snapshot.
// Token amounts round up so a purchase is never undercharged.
func ComputeTotals(items []models.CartItem) Totals {
	var cents int64
	for _, item := range items {
		cents += item.Product.Price * item.Quantity
	}
	tokens := ceilDiv(cents, CentsPerToken)
	bonus := ceilDiv(tokens*bonusPercent, 100)
	return Totals{
		TotalCents:  cents,
		TotalTokens: tokens,
		BonusTokens: bonus,
	}
}

// LineItems maps cart lines to the gateway adapter's line-item shape.
func LineItems(items []models.CartItem) []models.LineItem {
	lines := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.LineItem{
			ProductName:        item.Product.Name,
			ProductDescription: item.Product.Description,
			PriceInCents:       item.Product.Price,
			Quantity:           item.Quantity,
			Currency:           checkoutCurrency,
		})
	}
	return lines
}

// PurchaseDescription builds the human-readable ledger description,
// e.g. "Purchase: 2x Walnut Bowl, 1x Ceramic Mug".
func PurchaseDescription(items []models.CartItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, item.Product.Name))
	}
	return "Purchase: " + strings.Join(parts, ", ")
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
