// Package location resolves an approximate current position through a
// geo-IP lookup. Resolution failures are never fatal: callers skip
// location-based defaulting and move on.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/buddywhitman/foodswipe-sub000/internal/model"
)

const defaultEndpoint = "http://ip-api.com/json"

// ResolveTimeout bounds how long a position lookup may take.
const ResolveTimeout = 10 * time.Second

// Resolver looks up the current position.
type Resolver struct {
	endpoint   string
	httpClient *http.Client
}

// NewResolver creates a resolver against the default geo-IP endpoint.
func NewResolver() *Resolver {
	return &Resolver{
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: ResolveTimeout},
	}
}

// NewResolverWithEndpoint creates a resolver against a custom endpoint.
func NewResolverWithEndpoint(endpoint string) *Resolver {
	return &Resolver{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: ResolveTimeout},
	}
}

// ResolveCurrentPosition returns the approximate position, or an error
// after the timeout.
func (r *Resolver) ResolveCurrentPosition(ctx context.Context) (model.Position, error) {
	ctx, cancel := context.WithTimeout(ctx, ResolveTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", r.endpoint, nil)
	if err != nil {
		return model.Position{}, fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return model.Position{}, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Position{}, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	var result geoIPResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.Position{}, fmt.Errorf("JSON decode error: %w", err)
	}
	if result.Status != "" && result.Status != "success" {
		return model.Position{}, fmt.Errorf("lookup failed: %s", result.Message)
	}

	return model.Position{Lat: result.Lat, Lng: result.Lon, City: result.City}, nil
}

type geoIPResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
}
