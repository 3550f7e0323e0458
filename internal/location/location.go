package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"cool-finder/internal/observability"
	"cool-finder/internal/providers/nominatim"
	"cool-finder/internal/types"

	gocache "github.com/patrickmn/go-cache"
)

// ErrAddressNotFound is returned when the geocoding provider has no match
// for the requested address
var ErrAddressNotFound = errors.New("address not found")

// Place is a resolved location: coordinates plus human-readable metadata
type Place struct {
	Coordinates types.Coords `json:"coordinates"`
	Name        string       `json:"name,omitempty"`
	DisplayName string       `json:"display_name"`
	City        string       `json:"city,omitempty"`
	State       string       `json:"state,omitempty"`
	Country     string       `json:"country,omitempty"`
	CountryCode string       `json:"country_code,omitempty"`
}

// GeocodeProvider defines the interface for geocoding data providers
type GeocodeProvider interface {
	Search(ctx context.Context, query string) ([]nominatim.PlaceAPIResult, error)
	Reverse(ctx context.Context, latitude, longitude float64) (*nominatim.PlaceAPIResult, error)
}

// Service turns free-text addresses into coordinates and back. The core
// query path only needs a coordinate; this service exists so a frontend can
// accept an address instead.
type Service interface {
	Geocode(ctx context.Context, address string) (*Place, error)
	ReverseGeocode(ctx context.Context, coords types.Coords) (*Place, error)
}

type locationService struct {
	provider GeocodeProvider
	cache    *gocache.Cache
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewService creates a location service backed by the public Nominatim API
func NewService(userAgent string, timeout, cacheTTL time.Duration, metrics *observability.Metrics, logger *slog.Logger) Service {
	return NewServiceWithProvider(nominatim.NewClient(userAgent, timeout), cacheTTL, metrics, logger)
}

// NewServiceWithProvider creates a location service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider GeocodeProvider, cacheTTL time.Duration, metrics *observability.Metrics, logger *slog.Logger) Service {
	return &locationService{
		provider: provider,
		cache:    gocache.New(cacheTTL, 2*cacheTTL),
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *locationService) Geocode(ctx context.Context, address string) (*Place, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("%w: empty address", ErrAddressNotFound)
	}

	key := "fwd:" + strings.ToLower(address)
	if cached, ok := s.cache.Get(key); ok {
		s.metrics.GeocodeCache.WithLabelValues("forward", "hit").Inc()
		place := cached.(Place)
		return &place, nil
	}
	s.metrics.GeocodeCache.WithLabelValues("forward", "miss").Inc()

	results, err := s.provider.Search(ctx, address)
	if err != nil {
		s.metrics.GeocodeRequests.WithLabelValues("forward", "error").Inc()
		return nil, fmt.Errorf("failed to geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		// Not cached: a later load of provider data may resolve it.
		s.metrics.GeocodeRequests.WithLabelValues("forward", "not_found").Inc()
		return nil, fmt.Errorf("%w: %q", ErrAddressNotFound, address)
	}

	place, err := translatePlace(&results[0])
	if err != nil {
		s.metrics.GeocodeRequests.WithLabelValues("forward", "error").Inc()
		return nil, err
	}

	s.metrics.GeocodeRequests.WithLabelValues("forward", "success").Inc()
	s.cache.Set(key, *place, gocache.DefaultExpiration)
	return place, nil
}

func (s *locationService) ReverseGeocode(ctx context.Context, coords types.Coords) (*Place, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("rev:%.6f,%.6f", coords.Latitude, coords.Longitude)
	if cached, ok := s.cache.Get(key); ok {
		s.metrics.GeocodeCache.WithLabelValues("reverse", "hit").Inc()
		place := cached.(Place)
		return &place, nil
	}
	s.metrics.GeocodeCache.WithLabelValues("reverse", "miss").Inc()

	result, err := s.provider.Reverse(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.metrics.GeocodeRequests.WithLabelValues("reverse", "error").Inc()
		return nil, fmt.Errorf("failed to reverse geocode: %w", err)
	}
	if result == nil || result.DisplayName == "" {
		s.metrics.GeocodeRequests.WithLabelValues("reverse", "not_found").Inc()
		return nil, fmt.Errorf("%w: no place at (%f, %f)", ErrAddressNotFound, coords.Latitude, coords.Longitude)
	}

	place, err := translatePlace(result)
	if err != nil {
		s.metrics.GeocodeRequests.WithLabelValues("reverse", "error").Inc()
		return nil, err
	}

	s.metrics.GeocodeRequests.WithLabelValues("reverse", "success").Inc()
	s.cache.Set(key, *place, gocache.DefaultExpiration)
	return place, nil
}

// translatePlace converts a Nominatim result to the domain Place type.
// Nominatim serializes coordinates as strings.
func translatePlace(r *nominatim.PlaceAPIResult) (*Place, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("provider returned malformed latitude %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("provider returned malformed longitude %q: %w", r.Lon, err)
	}

	coords := types.NewCoords(lat, lon)
	if err := coords.Validate(); err != nil {
		return nil, fmt.Errorf("provider returned out-of-range coordinates: %w", err)
	}

	return &Place{
		Coordinates: coords,
		Name:        r.Name,
		DisplayName: r.DisplayName,
		City:        r.Address.City,
		State:       r.Address.State,
		Country:     r.Address.Country,
		CountryCode: r.Address.CountryCode,
	}, nil
}
