package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
	}
}

func TestClient_GetCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("temperature_unit"); got != "fahrenheit" {
			t.Errorf("temperature_unit = %q, want fahrenheit", got)
		}
		if got := q.Get("current"); got == "" {
			t.Error("missing current query parameter")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"latitude": 47.6062,
			"longitude": -122.3321,
			"timezone": "GMT",
			"current": {
				"time": "2026-08-24T19:00",
				"interval": 900,
				"temperature_2m": 92.5,
				"apparent_temperature": 96.0,
				"relative_humidity_2m": 40,
				"is_day": 1
			}
		}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).GetCurrent(context.Background(), 47.6062, -122.3321)
	if err != nil {
		t.Fatalf("GetCurrent() error = %v", err)
	}
	if resp.Current.Temperature2M != 92.5 {
		t.Errorf("Temperature2M = %v, want 92.5", resp.Current.Temperature2M)
	}
	if resp.Current.ApparentTemperature != 96.0 {
		t.Errorf("ApparentTemperature = %v, want 96.0", resp.Current.ApparentTemperature)
	}
	if resp.Current.IsDay != 1 {
		t.Errorf("IsDay = %v, want 1", resp.Current.IsDay)
	}
}

func TestClient_GetCurrent_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":true,"reason":"Latitude must be in range"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).GetCurrent(context.Background(), 47.6062, -122.3321); err == nil {
		t.Error("GetCurrent() expected error on non-200 status")
	}
}

func TestClient_GetCurrent_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current":`))
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).GetCurrent(context.Background(), 47.6062, -122.3321); err == nil {
		t.Error("GetCurrent() expected error on malformed body")
	}
}
