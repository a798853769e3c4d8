package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "shopsearch"

// Search outcome label values.
const (
	OutcomeHit   = "hit"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Search and catalog Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Smart search requests by outcome",
		},
		[]string{"outcome"}, // hit / empty / error
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Matches per search before top-K truncation",
			Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
		},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_engine_duration_seconds",
			Help:      "Time spent in the relevance engine, excluding catalog loading",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	CatalogProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_products",
			Help:      "Products in the most recently loaded catalog snapshot",
		},
	)

	CatalogCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_total",
			Help:      "Catalog snapshot cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var registered bool

// Register registers every collector with reg. Must be called once from main.
func Register(reg prometheus.Registerer) {
	if registered {
		return
	}
	reg.MustRegister(
		httpRequestDuration,
		httpRequestsTotal,
		SearchRequestsTotal,
		SearchResults,
		SearchDuration,
		CatalogProducts,
		CatalogCacheTotal,
	)
	registered = true
}
