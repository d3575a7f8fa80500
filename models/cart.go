package models

import "time"

// CartItem keeps the product snapshot taken when the item was first added,
// so later catalog edits don't change what the shopper agreed to pay.
type CartItem struct {
	Product  Product   `json:"product"`
	Quantity int64     `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// Cart is scoped to one session and lives in memory only. A process
// restart empties every cart.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}
