package nominatim

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
		userAgent:  "cool-finder-test",
	}
}

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q, want /search", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "1000 4th Ave, Seattle" {
			t.Errorf("q = %q, want the raw address", got)
		}
		if got := r.Header.Get("User-Agent"); got != "cool-finder-test" {
			t.Errorf("User-Agent = %q, want cool-finder-test", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"place_id": 12345,
			"lat": "47.6067",
			"lon": "-122.3325",
			"name": "Central Library",
			"display_name": "Central Library, 1000, 4th Avenue, Seattle, Washington, United States"
		}]`))
	}))
	defer srv.Close()

	results, err := testClient(srv.URL).Search(context.Background(), "1000 4th Ave, Seattle")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Search() returned %d results, want 1", len(results))
	}
	if results[0].Lat != "47.6067" || results[0].Lon != "-122.3325" {
		t.Errorf("Search() coordinates = (%s, %s), want (47.6067, -122.3325)", results[0].Lat, results[0].Lon)
	}
}

func TestClient_Search_NoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	results, err := testClient(srv.URL).Search(context.Background(), "nowhere at all")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Search() returned %d results, want 0", len(results))
	}
}

func TestClient_Search_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := testClient(srv.URL).Search(context.Background(), "anything"); err == nil {
		t.Error("Search() expected error on non-200 status")
	}
}

func TestClient_Reverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("path = %q, want /reverse", r.URL.Path)
		}
		if got := r.URL.Query().Get("lat"); got == "" {
			t.Error("missing lat query parameter")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"place_id": 999,
			"lat": "47.6062",
			"lon": "-122.3321",
			"display_name": "Downtown, Seattle, King County, Washington, United States",
			"address": {"city": "Seattle", "state": "Washington", "country_code": "us"}
		}`))
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).Reverse(context.Background(), 47.6062, -122.3321)
	if err != nil {
		t.Fatalf("Reverse() error = %v", err)
	}
	if result.Address.City != "Seattle" {
		t.Errorf("Reverse() city = %q, want Seattle", result.Address.City)
	}
}
