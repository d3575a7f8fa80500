package models

// LineItem is one cart line in the shape the payment gateway adapter
// expects when creating a hosted checkout session.
type LineItem struct {
	ProductName        string `json:"product_name"`
	ProductDescription string `json:"product_description"`
	PriceInCents       int64  `json:"price_in_cents"`
	Quantity           int64  `json:"quantity"`
	Currency           string `json:"currency"`
}

// CheckoutSession is the gateway adapter's response to a session request.
// URL is the hosted payment page the browser is sent to.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// GatewayConfiguration is admin-managed and stored by the gateway adapter.
type GatewayConfiguration struct {
	SecretKey        string   `json:"secret_key"`
	AllowedCountries []string `json:"allowed_countries"`
}

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodTokens PaymentMethod = "tokens"
)
