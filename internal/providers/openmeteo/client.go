package openmeteo

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

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=47.6062&longitude=-122.3321&current=temperature_2m,apparent_temperature,relative_humidity_2m,is_day&temperature_unit=fahrenheit&timeformat=iso8601
const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an Open-Meteo client. An empty baseURL uses the public
// API endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// GetCurrent fetches the current conditions relevant to heat exposure for the
// given coordinates. Temperatures come back in Fahrenheit.
func (c *Client) GetCurrent(ctx context.Context, latitude, longitude float64) (*CurrentAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	currentVars := []string{
		"temperature_2m",
		"apparent_temperature",
		"relative_humidity_2m",
		"is_day",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("temperature_unit", "fahrenheit")
	q.Set("timeformat", "iso8601")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

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

	var apiResp CurrentAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
