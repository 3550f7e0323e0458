package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the cooling-center API.
type Metrics struct {
	NearestQueries  *prometheus.CounterVec // labels: outcome={success,invalid,error}
	NearestDuration prometheus.Histogram
	ResultsReturned prometheus.Histogram

	RegistryCenters   prometheus.Gauge
	RegistryRefreshes *prometheus.CounterVec // labels: outcome={success,error}

	GeocodeRequests *prometheus.CounterVec // labels: direction={forward,reverse}, outcome={success,not_found,error}
	GeocodeCache    *prometheus.CounterVec // labels: direction={forward,reverse}, result={hit,miss}

	DirectionsRequests *prometheus.CounterVec // labels: outcome={success,error}

	HeatRequests *prometheus.CounterVec // labels: outcome={success,degraded,invalid,error}
	HeatCache    *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all instruments with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.NearestQueries,
		m.NearestDuration,
		m.ResultsReturned,
		m.RegistryCenters,
		m.RegistryRefreshes,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.DirectionsRequests,
		m.HeatRequests,
		m.HeatCache,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests in
// different packages never trip "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		NearestQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cool_finder",
			Name:      "nearest_queries_total",
			Help:      "Nearest-center queries by outcome.",
		}, []string{"outcome"}),
		NearestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cool_finder",
			Name:      "nearest_query_duration_seconds",
			Help:      "Duration of a nearest-center query including filtering.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		ResultsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cool_finder",
			Name:      "nearest_results_returned",
			Help:      "Number of centers returned per nearest query.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		RegistryCenters: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cool_finder",
			Name:      "registry_centers",
			Help:      "Number of cooling centers in the active registry snapshot.",
		}),
		RegistryRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cool_finder",
			Name:      "registry_refreshes_total",
			Help:      "Registry reload attempts by outcome.",
		}, []string{"outcome"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cool_finder",
			Name:      "geocode_requests_total",
			Help:      "Geocoding requests by direction and outcome.",
		}, []string{"direction", "outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cool_finder",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by direction and result.",
		}, []string{"direction", "result"}),
		DirectionsRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cool_finder",
			Name:      "directions_requests_total",
			Help:      "Directions requests by outcome.",
		}, []string{"outcome"}),
		HeatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cool_finder",
			Name:      "heat_requests_total",
			Help:      "Heat conditions requests by outcome.",
		}, []string{"outcome"}),
		HeatCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cool_finder",
			Name:      "heat_cache_total",
			Help:      "Heat conditions cache lookups by result.",
		}, []string{"result"}),
	}
}
