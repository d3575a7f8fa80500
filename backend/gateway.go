package backend

import (
	"context"
	"fmt"

	"github.com/artisanlearn/storefront-api/models"
)

// GatewayClient talks to the payment gateway adapter that fronts the
// hosted card checkout. The wire contract for session creation is a
// typed JSON object {"id": ..., "url": ...}.
type GatewayClient struct {
	*Client
}

func NewGatewayClient(baseURL string) *GatewayClient {
	return &GatewayClient{Client: newClient(baseURL)}
}

type configuredResponse struct {
	Configured bool `json:"configured"`
}

type createSessionRequest struct {
	Items      []models.LineItem `json:"items"`
	SuccessURL string            `json:"success_url"`
	CancelURL  string            `json:"cancel_url"`
}

func (g *GatewayClient) IsConfigured(ctx context.Context) (bool, error) {
	var resp configuredResponse
	if err := g.getJSON(ctx, "/configured", &resp); err != nil {
		return false, err
	}
	return resp.Configured, nil
}

// CreateCheckoutSession asks the adapter for a hosted payment page. A
// response without a redirect URL is rejected here so no caller ever
// navigates to nothing.
func (g *GatewayClient) CreateCheckoutSession(ctx context.Context, items []models.LineItem, successURL, cancelURL string) (models.CheckoutSession, error) {
	var session models.CheckoutSession
	err := g.postJSON(ctx, "/sessions", createSessionRequest{
		Items:      items,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	}, &session)
	if err != nil {
		return models.CheckoutSession{}, err
	}
	if session.URL == "" {
		return models.CheckoutSession{}, fmt.Errorf("create session: %w", ErrMissingRedirectURL)
	}
	return session, nil
}

// SetConfiguration stores the admin-managed gateway credentials on the
// adapter.
func (g *GatewayClient) SetConfiguration(ctx context.Context, cfg models.GatewayConfiguration) error {
	return g.putJSON(ctx, "/config", cfg, nil)
}
