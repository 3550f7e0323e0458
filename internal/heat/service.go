package heat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cool-finder/internal/observability"
	"cool-finder/internal/providers/nws"
	"cool-finder/internal/providers/openmeteo"
	"cool-finder/internal/types"

	"github.com/jonboulle/clockwork"
	gocache "github.com/patrickmn/go-cache"
)

// observedAtLayout is the timestamp format Open-Meteo uses for current
// conditions. Values are in GMT because the client does not request a
// timezone.
const observedAtLayout = "2006-01-02T15:04"

// ConditionsProvider fetches current weather conditions for a point.
type ConditionsProvider interface {
	GetCurrent(ctx context.Context, latitude, longitude float64) (*openmeteo.CurrentAPIResponse, error)
}

// AlertsProvider fetches active weather alerts covering a point.
type AlertsProvider interface {
	GetActiveAlerts(ctx context.Context, latitude, longitude float64) (*nws.AlertsAPIResponse, error)
}

// Service reports current heat exposure for a location.
type Service interface {
	GetConditions(ctx context.Context, origin types.Coords) (*Conditions, error)
}

type heatService struct {
	conditionsProvider ConditionsProvider
	alertsProvider     AlertsProvider
	cache              *gocache.Cache
	clock              clockwork.Clock
	metrics            *observability.Metrics
	logger             *slog.Logger
}

// NewService creates a heat service backed by the public Open-Meteo and NWS
// APIs.
func NewService(userAgent string, timeout, cacheTTL time.Duration, metrics *observability.Metrics, logger *slog.Logger) Service {
	return NewServiceWithProviders(
		openmeteo.NewClient("", timeout),
		nws.NewClient(userAgent, timeout),
		cacheTTL,
		clockwork.NewRealClock(),
		metrics,
		logger,
	)
}

// NewServiceWithProviders creates a heat service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(
	conditionsProvider ConditionsProvider,
	alertsProvider AlertsProvider,
	cacheTTL time.Duration,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	logger *slog.Logger,
) Service {
	return &heatService{
		conditionsProvider: conditionsProvider,
		alertsProvider:     alertsProvider,
		cache:              gocache.New(cacheTTL, 2*cacheTTL),
		clock:              clock,
		metrics:            metrics,
		logger:             logger.With("component", "heat-service"),
	}
}

// GetConditions retrieves the current heat conditions and any active
// heat-related alerts for the given coordinates. An alert lookup failure
// degrades the response rather than failing it.
func (s *heatService) GetConditions(ctx context.Context, origin types.Coords) (*Conditions, error) {
	if err := origin.Validate(); err != nil {
		s.metrics.HeatRequests.WithLabelValues("invalid").Inc()
		return nil, err
	}

	// Conditions change slowly enough that nearby lookups within the TTL
	// can share a response. The key rounds to roughly a 100 m grid.
	cacheKey := fmt.Sprintf("%.3f,%.3f", origin.Latitude, origin.Longitude)
	if cached, found := s.cache.Get(cacheKey); found {
		s.metrics.HeatCache.WithLabelValues("hit").Inc()
		conditions := cached.(Conditions)
		return &conditions, nil
	}
	s.metrics.HeatCache.WithLabelValues("miss").Inc()

	current, err := s.conditionsProvider.GetCurrent(ctx, origin.Latitude, origin.Longitude)
	if err != nil {
		s.metrics.HeatRequests.WithLabelValues("error").Inc()
		s.logger.Error("failed to get current conditions",
			"latitude", origin.Latitude,
			"longitude", origin.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get current conditions: %w", err)
	}

	observedAt, err := time.Parse(observedAtLayout, current.Current.Time)
	if err != nil {
		observedAt = s.clock.Now().UTC()
	}

	conditions := Conditions{
		Coordinates:         origin,
		ObservedAt:          observedAt,
		Temperature:         types.NewTemperatureFromFahrenheit(current.Current.Temperature2M),
		ApparentTemperature: types.NewTemperatureFromFahrenheit(current.Current.ApparentTemperature),
		RelativeHumidity:    current.Current.RelativeHumidity2M,
		IsDay:               current.Current.IsDay == 1,
		Advisory:            AdvisoryForHeatIndex(current.Current.ApparentTemperature),
		Alerts:              []Alert{},
	}

	outcome := "success"
	alerts, err := s.alertsProvider.GetActiveAlerts(ctx, origin.Latitude, origin.Longitude)
	if err != nil {
		outcome = "degraded"
		s.logger.Warn("failed to get active alerts, returning conditions without them",
			"latitude", origin.Latitude,
			"longitude", origin.Longitude,
			"error", err,
		)
	} else {
		conditions.Alerts = heatAlerts(alerts)
	}

	s.metrics.HeatRequests.WithLabelValues(outcome).Inc()
	s.cache.Set(cacheKey, conditions, gocache.DefaultExpiration)

	return &conditions, nil
}

// heatAlerts keeps only heat-related events from the full active alert set.
func heatAlerts(resp *nws.AlertsAPIResponse) []Alert {
	alerts := make([]Alert, 0, len(resp.Features))
	for _, f := range resp.Features {
		if !strings.Contains(f.Properties.Event, "Heat") {
			continue
		}

		alert := Alert{
			Event:       f.Properties.Event,
			Severity:    f.Properties.Severity,
			Headline:    f.Properties.Headline,
			Instruction: f.Properties.Instruction,
		}
		if expires, err := time.Parse(time.RFC3339, f.Properties.Expires); err == nil {
			alert.Expires = expires
		}
		alerts = append(alerts, alert)
	}
	return alerts
}
