package osrm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClient_GetRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/route/v1/walking/") {
			t.Errorf("path = %q, want /route/v1/walking/ prefix", r.URL.Path)
		}
		if got := r.URL.Query().Get("steps"); got != "true" {
			t.Errorf("steps = %q, want true", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"distance": 850.3,
				"duration": 612.0,
				"geometry": "_p~iF~ps|U_ulLnnqC",
				"legs": [{
					"distance": 850.3,
					"duration": 612.0,
					"steps": [
						{"distance": 500, "duration": 360, "name": "4th Avenue", "mode": "walking",
						 "maneuver": {"type": "depart"}},
						{"distance": 350.3, "duration": 252, "name": "Madison Street", "mode": "walking",
						 "maneuver": {"type": "turn", "modifier": "left"}}
					]
				}]
			}]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	resp, err := client.GetRoute(context.Background(), "walking", 47.6062, -122.3321, 47.6067, -122.3325)
	if err != nil {
		t.Fatalf("GetRoute() error = %v", err)
	}

	if len(resp.Routes) != 1 {
		t.Fatalf("GetRoute() returned %d routes, want 1", len(resp.Routes))
	}
	route := resp.Routes[0]
	if route.Distance != 850.3 {
		t.Errorf("distance = %f, want 850.3", route.Distance)
	}
	if len(route.Legs) != 1 || len(route.Legs[0].Steps) != 2 {
		t.Fatalf("unexpected legs/steps shape: %+v", route.Legs)
	}
	if route.Legs[0].Steps[1].Maneuver.Modifier != "left" {
		t.Errorf("second step modifier = %q, want left", route.Legs[0].Steps[1].Maneuver.Modifier)
	}
}

func TestClient_GetRoute_NoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": "NoRoute", "message": "Impossible route between points"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.GetRoute(context.Background(), "driving", 47.6, -122.3, 0, 0)
	if err == nil {
		t.Fatal("GetRoute() expected error for NoRoute response")
	}
	if !strings.Contains(err.Error(), "NoRoute") {
		t.Errorf("GetRoute() error = %v, want containing NoRoute", err)
	}
}

func TestClient_GetRoute_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	if _, err := client.GetRoute(context.Background(), "driving", 47.6, -122.3, 47.7, -122.4); err == nil {
		t.Error("GetRoute() expected error for non-JSON body")
	}
}
