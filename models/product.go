package models

// Product is a catalog entry as served by the external catalog service.
// Prices are integer minor units (cents); Inventory is the stock cap at
// fetch time.
type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       int64      `json:"price"`
	Inventory   int64      `json:"inventory"`
	Images      []MediaRef `json:"images,omitempty"`
}

// MediaRef points at a blob held by the external media store.
type MediaRef struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
}
