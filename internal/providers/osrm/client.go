package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://project-osrm.org/docs/v5.24.0/api/#route-service
// Sample request: https://router.project-osrm.org/route/v1/walking/-122.3321,47.6062;-122.3325,47.6067?overview=full&steps=true
const (
	defaultBaseURL = "https://router.project-osrm.org"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// GetRoute fetches a route between two points for the given OSRM profile
// (driving, walking, cycling). Coordinates are in OSRM's lon,lat order.
func (c *Client) GetRoute(ctx context.Context, profile string, fromLat, fromLon, toLat, toLon float64) (*RouteAPIResponse, error) {
	path := fmt.Sprintf("/route/v1/%s/%f,%f;%f,%f", url.PathEscape(profile), fromLon, fromLat, toLon, toLat)

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("overview", "full")
	q.Set("steps", "true")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	// OSRM reports routing failures as 400 with a JSON body, so decode
	// before checking the status.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var apiResp RouteAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if apiResp.Code != "Ok" {
		return nil, fmt.Errorf("routing failed: %s: %s", apiResp.Code, apiResp.Message)
	}

	return &apiResp, nil
}
