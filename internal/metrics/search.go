package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search engine Prometheus metrics.
var (
	EngineRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobsearch",
			Name:      "engine_requests_total",
			Help:      "Total number of search engine requests",
		},
		[]string{"index", "status"},
	)

	EngineRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "jobsearch",
			Name:      "engine_request_duration_seconds",
			Help:      "Search engine request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"index"},
	)

	LocationFallbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobsearch",
			Name:      "location_fallback_total",
			Help:      "Location retokenization retries and whether they found results",
		},
		[]string{"domain", "outcome"}, // outcome: "hit" / "miss"
	)

	FacetCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobsearch",
			Name:      "facet_cache_total",
			Help:      "Facet cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	SitemapPagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jobsearch",
			Name:      "sitemap_pages_total",
			Help:      "Cursor pages fetched for sitemap export",
		},
		[]string{"variant"},
	)
)

var searchMetricsRegistered bool

// SearchCollectors returns the search metrics for registration on a
// caller-owned registry.
func SearchCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		EngineRequestsTotal,
		EngineRequestDuration,
		LocationFallbackTotal,
		FacetCacheTotal,
		SitemapPagesTotal,
	}
}

// RegisterSearchMetrics registers the search Prometheus metrics on the
// default registry. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchCollectors()...)
	searchMetricsRegistered = true
}
