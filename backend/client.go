// Package backend holds typed HTTP clients for the external services
// this app is a thin front over: the token ledger, the product catalog,
// the payment gateway adapter, and the profile store. Each client speaks
// a fixed contract; nothing here owns durable state.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	// ErrGatewayNotConfigured signals the admin has not stored gateway
	// credentials yet.
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")

	// ErrMissingRedirectURL marks a session response without a usable
	// hosted-payment URL. The caller must never navigate to an empty URL.
	ErrMissingRedirectURL = errors.New("checkout session response is missing a redirect url")
)

// errorEnvelope is the error body every backend service returns on a
// non-2xx response.
type errorEnvelope struct {
	Error string `json:"error"`
}

// Client is the shared HTTP plumbing for all service clients.
type Client struct {
	baseURL string
	http    *http.Client
}

func newClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) putJSON(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPut, path, payload, out)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope errorEnvelope
		if json.Unmarshal(data, &envelope) == nil && envelope.Error != "" {
			// Surface the backend's message verbatim; callers match on
			// known substrings to pick friendlier wording.
			return fmt.Errorf("backend error (%d): %s", resp.StatusCode, envelope.Error)
		}
		return fmt.Errorf("backend error (%d): %s", resp.StatusCode, string(data))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse backend response: %w", err)
	}
	return nil
}
