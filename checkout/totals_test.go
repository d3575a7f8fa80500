package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artisanlearn/storefront-api/models"
)

func cartItem(id, name string, price, quantity int64) models.CartItem {
	return models.CartItem{
		Product: models.Product{
			ID:          id,
			Name:        name,
			Description: name + " description",
			Price:       price,
			Inventory:   10,
		},
		Quantity: quantity,
	}
}

func TestComputeTotals(t *testing.T) {
	items := []models.CartItem{
		cartItem("a", "Walnut Bowl", 2999, 2),
		cartItem("b", "Ceramic Mug", 1000, 1),
	}

	totals := ComputeTotals(items)

	assert.Equal(t, int64(6998), totals.TotalCents)
	assert.Equal(t, int64(70), totals.TotalTokens) // ceil(6998/100)
	assert.Equal(t, int64(4), totals.BonusTokens)  // ceil(70*0.05)
}

func TestComputeTotals_ExactMultiple(t *testing.T) {
	totals := ComputeTotals([]models.CartItem{cartItem("a", "Kit", 2000, 5)})

	assert.Equal(t, int64(10000), totals.TotalCents)
	assert.Equal(t, int64(100), totals.TotalTokens)
	assert.Equal(t, int64(5), totals.BonusTokens)
}

func TestComputeTotals_RoundsTokensUp(t *testing.T) {
	// 1 cent still costs a whole token
	totals := ComputeTotals([]models.CartItem{cartItem("a", "Sticker", 1, 1)})

	assert.Equal(t, int64(1), totals.TotalCents)
	assert.Equal(t, int64(1), totals.TotalTokens)
	assert.Equal(t, int64(1), totals.BonusTokens)
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.Equal(t, int64(0), totals.TotalCents)
	assert.Equal(t, int64(0), totals.TotalTokens)
	assert.Equal(t, int64(0), totals.BonusTokens)
}

func TestLineItems(t *testing.T) {
	items := []models.CartItem{
		cartItem("a", "Walnut Bowl", 2999, 2),
		cartItem("b", "Ceramic Mug", 1000, 1),
	}

	lines := LineItems(items)

	assert.Len(t, lines, 2)
	assert.Equal(t, models.LineItem{
		ProductName:        "Walnut Bowl",
		ProductDescription: "Walnut Bowl description",
		PriceInCents:       2999,
		Quantity:           2,
		Currency:           "usd",
	}, lines[0])
}

func TestPurchaseDescription(t *testing.T) {
	items := []models.CartItem{
		cartItem("a", "Walnut Bowl", 2999, 2),
		cartItem("b", "Ceramic Mug", 1000, 1),
	}

	assert.Equal(t, "Purchase: 2x Walnut Bowl, 1x Ceramic Mug", PurchaseDescription(items))
}
