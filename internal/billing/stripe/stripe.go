// Package stripe implements the billing provider against Stripe's REST API.
// The surface used is small enough that a form-encoded HTTP client beats
// pulling in the full SDK.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com/v1"

type Config struct {
	SecretKey       string
	PriceID         string
	SuccessURL      string
	CancelURL       string
	PortalReturnURL string
}

type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:     cfg,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// apiError is the "error" envelope Stripe wraps failures in.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling stripe: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading stripe response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("stripe %s: %s", path, apiErr.Error.Message)
		}

		return fmt.Errorf("stripe %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding stripe response: %w", err)
	}

	return nil
}

func (c *Client) CreateCustomer(ctx context.Context, email string) (string, error) {
	form := url.Values{}
	form.Set("email", email)

	var customer struct {
		ID string `json:"id"`
	}

	if err := c.post(ctx, "/customers", form, &customer); err != nil {
		return "", err
	}

	return customer.ID, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, customerID string) (string, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("mode", "subscription")
	form.Set("line_items[0][price]", c.cfg.PriceID)
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", c.cfg.SuccessURL)
	form.Set("cancel_url", c.cfg.CancelURL)

	var session struct {
		URL string `json:"url"`
	}

	if err := c.post(ctx, "/checkout/sessions", form, &session); err != nil {
		return "", err
	}

	return session.URL, nil
}

func (c *Client) CreatePortalSession(ctx context.Context, customerID string) (string, error) {
	form := url.Values{}
	form.Set("customer", customerID)
	form.Set("return_url", c.cfg.PortalReturnURL)

	var session struct {
		URL string `json:"url"`
	}

	if err := c.post(ctx, "/billing_portal/sessions", form, &session); err != nil {
		return "", err
	}

	return session.URL, nil
}
