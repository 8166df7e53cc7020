// Package catalog talks to the remote catalog and coupon sources and
// keeps a local last-known-good cache so the app still works when the
// network does not.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

// Client wraps the remote catalog/coupon API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchCatalog fetches the dish catalog, optionally scoped to a
// location hint such as a city name.
func (c *Client) FetchCatalog(ctx context.Context, locationHint string) ([]model.CatalogItem, error) {
	params := url.Values{}
	if locationHint != "" {
		params.Set("near", locationHint)
	}

	reqURL := c.baseURL + "/v1/catalog"
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	var result catalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("JSON decode error: %w", err)
	}
	return result.Items, nil
}

// FetchCoupons fetches the active coupon list.
func (c *Client) FetchCoupons(ctx context.Context) ([]model.Coupon, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/v1/coupons", nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	var result couponResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("JSON decode error: %w", err)
	}
	return result.Coupons, nil
}

// API response types

type catalogResponse struct {
	Items []model.CatalogItem `json:"items"`
	Total int                 `json:"total"`
}

type couponResponse struct {
	Coupons []model.Coupon `json:"coupons"`
}
