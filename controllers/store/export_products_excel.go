package storeControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/artisanlearn/storefront-api/backend"
	"github.com/artisanlearn/storefront-api/checkout"
	"github.com/artisanlearn/storefront-api/models"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(catalog *backend.CatalogClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Description", "PriceCents", "PriceTokens",
			"Inventory", "Images",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(tokenPrice(p))
			row.AddCell().SetValue(p.Inventory)

			var imageNames []string
			for _, img := range p.Images {
				imageNames = append(imageNames, img.Name)
			}
			row.AddCell().SetValue(strings.Join(imageNames, ","))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

// tokenPrice shows what a single unit costs in tokens, using the same
// rounding the checkout applies.
func tokenPrice(p models.Product) string {
	totals := checkout.ComputeTotals([]models.CartItem{{Product: p, Quantity: 1}})
	return strconv.FormatInt(totals.TotalTokens, 10)
}
