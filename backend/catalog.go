package backend

import (
	"context"
	"net/url"

	"github.com/artisanlearn/storefront-api/models"
)

// CatalogClient reads the external product catalog. The storefront
// never writes products; admin CRUD goes straight to the catalog
// service.
type CatalogClient struct {
	*Client
}

func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{Client: newClient(baseURL)}
}

func (c *CatalogClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.getJSON(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *CatalogClient) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	var product models.Product
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(productID), &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}
