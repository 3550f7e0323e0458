package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"cool-finder/internal/observability"
	"cool-finder/internal/types"

	"github.com/paulmach/orb/geo"
	"github.com/tidwall/rtree"
)

// RankedCenter pairs a center with its great-circle distance from the query
// origin. Recomputed per query, never persisted.
type RankedCenter struct {
	Center   types.CoolingCenter `json:"center"`
	Distance types.Distance      `json:"distance"`
}

// snapshot is one immutable generation of the registry: the centers in their
// source order plus an R-tree over their coordinates. Refreshes build a new
// snapshot and swap it in whole.
type snapshot struct {
	centers []types.CoolingCenter
	byID    map[string]int
	index   rtree.RTreeG[int] // values are positions in centers
}

func newSnapshot(centers []types.CoolingCenter) *snapshot {
	s := &snapshot{
		centers: centers,
		byID:    make(map[string]int, len(centers)),
	}
	for i := range centers {
		pt := [2]float64{centers[i].Coordinates.Longitude, centers[i].Coordinates.Latitude}
		s.index.Insert(pt, pt, i)
		s.byID[centers[i].ID] = i
	}
	return s
}

// Registry holds the read-only cooling-center collection behind an atomic
// pointer. Queries read whichever snapshot is current; a concurrent refresh
// never tears an in-flight query.
type Registry struct {
	source  Source
	logger  *slog.Logger
	metrics *observability.Metrics
	snap    atomic.Pointer[snapshot]
}

// New builds a registry and performs the initial load. A failed first load
// is fatal: a finder with no centers to serve has nothing to do.
func New(source Source, logger *slog.Logger, metrics *observability.Metrics) (*Registry, error) {
	r := &Registry{
		source:  source,
		logger:  logger,
		metrics: metrics,
	}
	if err := r.Refresh(); err != nil {
		return nil, fmt.Errorf("initial registry load: %w", err)
	}
	return r, nil
}

// Refresh reloads the collection from the source and atomically swaps it in.
// On failure the previous snapshot stays active.
func (r *Registry) Refresh() error {
	centers, err := r.source.Load()
	if err != nil {
		r.metrics.RegistryRefreshes.WithLabelValues("error").Inc()
		return err
	}

	r.snap.Store(newSnapshot(centers))
	r.metrics.RegistryRefreshes.WithLabelValues("success").Inc()
	r.metrics.RegistryCenters.Set(float64(len(centers)))
	r.logger.Info("registry loaded", "centers", len(centers))
	return nil
}

// StartAutoRefresh reloads the registry every interval until ctx is done.
// Refresh failures are logged and retried next tick; the last good snapshot
// keeps serving in the meantime.
func (r *Registry) StartAutoRefresh(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.Refresh(); err != nil {
					r.logger.Error("registry refresh failed", "error", err)
				}
			}
		}
	}()
}

// Len returns the number of centers in the active snapshot
func (r *Registry) Len() int {
	return len(r.snap.Load().centers)
}

// All returns the active snapshot's centers in source order
func (r *Registry) All() []types.CoolingCenter {
	return r.snap.Load().centers
}

// GetByID looks up a single center in the active snapshot
func (r *Registry) GetByID(id string) (*types.CoolingCenter, bool) {
	s := r.snap.Load()
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.centers[i], true
}

// Nearest returns the centers within radiusMeters of origin, sorted by
// ascending haversine distance. Ties keep their source order. A radius of 0
// means uncapped. An empty registry yields an empty result.
func (r *Registry) Nearest(origin types.Coords, radiusMeters float64) []RankedCenter {
	s := r.snap.Load()
	from := origin.Point()

	var candidates []int
	if radiusMeters > 0 {
		// Prune with a bounding box before the exact distance check.
		bound := geo.NewBoundAroundPoint(from, radiusMeters)
		s.index.Search(
			[2]float64{bound.Min.Lon(), bound.Min.Lat()},
			[2]float64{bound.Max.Lon(), bound.Max.Lat()},
			func(_, _ [2]float64, i int) bool {
				candidates = append(candidates, i)
				return true
			},
		)
	} else {
		candidates = make([]int, len(s.centers))
		for i := range s.centers {
			candidates[i] = i
		}
	}

	type scored struct {
		idx    int
		meters float64
	}
	results := make([]scored, 0, len(candidates))
	for _, i := range candidates {
		d := geo.DistanceHaversine(from, s.centers[i].Coordinates.Point())
		if radiusMeters > 0 && d > radiusMeters {
			continue
		}
		results = append(results, scored{idx: i, meters: d})
	}

	// The R-tree yields candidates in arbitrary order, so ties break on the
	// source position explicitly rather than relying on a stable sort.
	sort.Slice(results, func(a, b int) bool {
		if results[a].meters != results[b].meters {
			return results[a].meters < results[b].meters
		}
		return results[a].idx < results[b].idx
	})

	ranked := make([]RankedCenter, len(results))
	for i, res := range results {
		ranked[i] = RankedCenter{
			Center:   s.centers[res.idx],
			Distance: types.NewDistanceFromMeters(res.meters),
		}
	}
	return ranked
}
