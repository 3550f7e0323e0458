package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=1000+4th+Ave+Seattle&format=json&limit=1
const (
	defaultBaseURL = "https://nominatim.openstreetmap.org"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a Nominatim client. Nominatim's usage policy requires a
// descriptive User-Agent on every request.
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		userAgent:  userAgent,
	}
}

// Search forward-geocodes a free-text address. An empty slice means the
// provider found nothing; that is not an error at this layer.
func (c *Client) Search(ctx context.Context, query string) ([]PlaceAPIResult, error) {
	u, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("addressdetails", "1")
	u.RawQuery = q.Encode()

	var results []PlaceAPIResult
	if err := c.doRequest(ctx, u.String(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Reverse looks up the place at the given coordinates
func (c *Client) Reverse(ctx context.Context, latitude, longitude float64) (*PlaceAPIResult, error) {
	u, err := url.Parse(c.baseURL + "/reverse")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	u.RawQuery = q.Encode()

	var result PlaceAPIResult
	if err := c.doRequest(ctx, u.String(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
