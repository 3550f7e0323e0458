package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://www.weather.gov/documentation/services-web-api
// Sample request: https://api.weather.gov/alerts/active?point=47.6062,-122.3321
const defaultBaseURL = "https://api.weather.gov"

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates an NWS API client. The API rejects requests without a
// User-Agent header identifying the application.
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		userAgent:  userAgent,
	}
}

// GetActiveAlerts fetches the active weather alerts covering the given point.
func (c *Client) GetActiveAlerts(ctx context.Context, latitude, longitude float64) (*AlertsAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = "/alerts/active"
	q := u.Query()
	q.Set("point", fmt.Sprintf("%.4f,%.4f", latitude, longitude))
	q.Set("status", "actual")
	q.Set("message_type", "alert")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp AlertsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
