package directions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cool-finder/internal/observability"
	"cool-finder/internal/providers/osrm"
	"cool-finder/internal/types"

	"github.com/twpayne/go-polyline"
)

// ErrUnsupportedMode is returned for travel modes the routing provider
// cannot serve
var ErrUnsupportedMode = errors.New("unsupported travel mode")

// ErrNoRoute is returned when the provider finds no route between the points
var ErrNoRoute = errors.New("no route found")

// Mode is a supported travel mode, matching an OSRM profile
type Mode string

const (
	ModeDriving Mode = "driving"
	ModeWalking Mode = "walking"
	ModeCycling Mode = "cycling"
)

// ParseMode normalizes a raw mode string. "bicycling" is accepted as an
// alias for cycling; transit has no OSRM profile and is rejected.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "walking":
		return ModeWalking, nil
	case "driving":
		return ModeDriving, nil
	case "cycling", "bicycling":
		return ModeCycling, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// Step is one turn-by-turn instruction of a route
type Step struct {
	Instruction     string         `json:"instruction"`
	Distance        types.Distance `json:"distance"`
	DurationSeconds float64        `json:"duration_seconds"`
}

// Route is a computed route between two coordinates
type Route struct {
	Mode            Mode           `json:"mode"`
	Distance        types.Distance `json:"distance"`
	DurationSeconds float64        `json:"duration_seconds"`
	Geometry        []types.Coords `json:"geometry"`
	Steps           []Step         `json:"steps"`
}

// RouteProvider defines the interface for routing data providers
type RouteProvider interface {
	GetRoute(ctx context.Context, profile string, fromLat, fromLon, toLat, toLon float64) (*osrm.RouteAPIResponse, error)
}

// Service computes turn-by-turn directions between a user and a cooling
// center. The heavy lifting is delegated to the routing provider; this
// service validates, translates, and decodes the route geometry.
type Service interface {
	GetRoute(ctx context.Context, from, to types.Coords, mode Mode) (*Route, error)
}

type directionsService struct {
	provider RouteProvider
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// NewService creates a directions service backed by an OSRM-compatible API
func NewService(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) Service {
	return NewServiceWithProvider(osrm.NewClient(baseURL, timeout), metrics, logger)
}

// NewServiceWithProvider creates a directions service with a custom provider.
// This is useful for testing with mock providers.
func NewServiceWithProvider(provider RouteProvider, metrics *observability.Metrics, logger *slog.Logger) Service {
	return &directionsService{
		provider: provider,
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *directionsService) GetRoute(ctx context.Context, from, to types.Coords, mode Mode) (*Route, error) {
	if err := from.Validate(); err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}
	if err := to.Validate(); err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	resp, err := s.provider.GetRoute(ctx, string(mode), from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	if err != nil {
		s.metrics.DirectionsRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to get route: %w", err)
	}
	if len(resp.Routes) == 0 {
		s.metrics.DirectionsRequests.WithLabelValues("error").Inc()
		return nil, ErrNoRoute
	}

	route, err := s.translateRoute(&resp.Routes[0], mode)
	if err != nil {
		s.metrics.DirectionsRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	s.metrics.DirectionsRequests.WithLabelValues("success").Inc()
	return route, nil
}

// translateRoute converts an OSRM route to the domain Route type, decoding
// the overview polyline into coordinates
func (s *directionsService) translateRoute(r *osrm.RouteAPI, mode Mode) (*Route, error) {
	coords, _, err := polyline.DecodeCoords([]byte(r.Geometry))
	if err != nil {
		return nil, fmt.Errorf("failed to decode route geometry: %w", err)
	}

	geometry := make([]types.Coords, len(coords))
	for i, c := range coords {
		geometry[i] = types.NewCoords(c[0], c[1])
	}

	var steps []Step
	for _, leg := range r.Legs {
		for _, st := range leg.Steps {
			steps = append(steps, Step{
				Instruction:     describeStep(&st),
				Distance:        types.NewDistanceFromMeters(st.Distance),
				DurationSeconds: st.Duration,
			})
		}
	}

	return &Route{
		Mode:            mode,
		Distance:        types.NewDistanceFromMeters(r.Distance),
		DurationSeconds: r.Duration,
		Geometry:        geometry,
		Steps:           steps,
	}, nil
}

// describeStep renders an OSRM maneuver as a short human-readable instruction
func describeStep(st *osrm.RouteAPIStep) string {
	switch st.Maneuver.Type {
	case "depart":
		if st.Name != "" {
			return fmt.Sprintf("head out on %s", st.Name)
		}
		return "head out"
	case "arrive":
		return "arrive at your destination"
	}

	action := st.Maneuver.Type
	if st.Maneuver.Modifier != "" {
		action = fmt.Sprintf("%s %s", st.Maneuver.Type, st.Maneuver.Modifier)
	}
	if st.Name != "" {
		return fmt.Sprintf("%s onto %s", action, st.Name)
	}
	return action
}
