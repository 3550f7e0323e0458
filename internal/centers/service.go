package centers

import (
	"fmt"
	"log/slog"
	"time"

	"cool-finder/internal/observability"
	"cool-finder/internal/registry"
	"cool-finder/internal/timezone"
	"cool-finder/internal/types"

	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb/geojson"
)

// CenterSource is the read side of the registry the service queries against
type CenterSource interface {
	Nearest(origin types.Coords, radiusMeters float64) []registry.RankedCenter
	All() []types.CoolingCenter
	GetByID(id string) (*types.CoolingCenter, bool)
}

// Service answers cooling-center queries: proximity ranking plus attribute
// filtering. All operations are pure reads over the registry snapshot.
type Service interface {
	// FindNearest ranks centers by distance from the query origin and applies
	// the query's attribute filters, preserving distance order
	FindNearest(q Query) ([]registry.RankedCenter, error)

	// List returns centers in source order, optionally narrowed by type and feature
	List(centerTypes []types.CenterType, features []types.Feature) []types.CoolingCenter

	// GetByID returns a single center or ErrCenterNotFound
	GetByID(id string) (*types.CoolingCenter, error)

	// GeoJSON renders the full registry as a FeatureCollection for map frontends
	GeoJSON() *geojson.FeatureCollection
}

type centersService struct {
	source  CenterSource
	tz      timezone.Service
	clock   clockwork.Clock
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewService creates a centers service backed by the real timezone resolver
// and wall clock
func NewService(source CenterSource, metrics *observability.Metrics, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewServiceWithDeps(source, tzSvc, clockwork.NewRealClock(), metrics, logger), nil
}

// NewServiceWithDeps creates a centers service with custom dependencies.
// This is useful for testing with a fake clock or timezone resolver.
func NewServiceWithDeps(
	source CenterSource,
	tz timezone.Service,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	logger *slog.Logger,
) Service {
	return &centersService{
		source:  source,
		tz:      tz,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *centersService) FindNearest(q Query) ([]registry.RankedCenter, error) {
	start := time.Now()

	if err := q.Origin.Validate(); err != nil {
		s.metrics.NearestQueries.WithLabelValues("invalid").Inc()
		return nil, err
	}
	if q.RadiusMeters < 0 {
		s.metrics.NearestQueries.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: got %f", ErrInvalidRadius, q.RadiusMeters)
	}

	ranked := s.source.Nearest(q.Origin, q.RadiusMeters)
	ranked = s.applyFilters(ranked, q)

	if q.Limit > 0 && len(ranked) > q.Limit {
		ranked = ranked[:q.Limit]
	}

	s.metrics.NearestQueries.WithLabelValues("success").Inc()
	s.metrics.NearestDuration.Observe(time.Since(start).Seconds())
	s.metrics.ResultsReturned.Observe(float64(len(ranked)))
	return ranked, nil
}

// applyFilters narrows the ranked sequence in place, keeping its order.
// With no filters set this is the identity transform.
func (s *centersService) applyFilters(ranked []registry.RankedCenter, q Query) []registry.RankedCenter {
	if len(q.Types) == 0 && len(q.Features) == 0 && !q.OpenNow {
		return ranked
	}

	at := q.At
	if at.IsZero() {
		at = s.clock.Now()
	}

	kept := ranked[:0]
	for _, res := range ranked {
		if !matchesType(&res.Center, q.Types) {
			continue
		}
		if !matchesFeatures(&res.Center, q.Features) {
			continue
		}
		if q.OpenNow && !s.isOpenAt(&res.Center, at) {
			continue
		}
		kept = append(kept, res)
	}
	return kept
}

func matchesType(c *types.CoolingCenter, selected []types.CenterType) bool {
	if len(selected) == 0 {
		return true
	}
	for _, t := range selected {
		if c.Type == t {
			return true
		}
	}
	return false
}

func matchesFeatures(c *types.CoolingCenter, required []types.Feature) bool {
	for _, f := range required {
		if !c.HasFeature(f) {
			return false
		}
	}
	return true
}

// isOpenAt evaluates the center's schedule in its own local timezone. When
// the timezone cannot be resolved the schedule is evaluated at the reference
// instant unconverted, which keeps a data problem from hiding a center.
func (s *centersService) isOpenAt(c *types.CoolingCenter, at time.Time) bool {
	loc, err := s.tz.Resolve(c.Coordinates.Latitude, c.Coordinates.Longitude)
	if err != nil {
		s.logger.Warn("timezone resolution failed, using reference time as-is",
			"center", c.ID,
			"error", err,
		)
		return c.Hours.IsOpenAt(at)
	}
	return c.Hours.IsOpenAt(at.In(loc))
}

func (s *centersService) List(centerTypes []types.CenterType, features []types.Feature) []types.CoolingCenter {
	all := s.source.All()
	if len(centerTypes) == 0 && len(features) == 0 {
		return all
	}

	matched := make([]types.CoolingCenter, 0, len(all))
	for i := range all {
		if matchesType(&all[i], centerTypes) && matchesFeatures(&all[i], features) {
			matched = append(matched, all[i])
		}
	}
	return matched
}

func (s *centersService) GetByID(id string) (*types.CoolingCenter, error) {
	c, ok := s.source.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCenterNotFound, id)
	}
	return c, nil
}

func (s *centersService) GeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range s.source.All() {
		f := geojson.NewFeature(c.Coordinates.Point())
		f.ID = c.ID
		f.Properties = geojson.Properties{
			"name":    c.Name,
			"address": c.Address,
			"type":    string(c.Type),
			"hours":   c.Hours,
		}
		if len(c.Features) > 0 {
			f.Properties["features"] = c.Features
		}
		if c.Notes != "" {
			f.Properties["notes"] = c.Notes
		}
		fc.Append(f)
	}
	return fc
}
