package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	CacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "data_cache_hits_total",
			Help: "Total number of in-memory cache hits",
		},
		[]string{"key"},
	)
	CacheMissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "data_cache_misses_total",
			Help: "Total number of in-memory cache misses",
		},
		[]string{"key"},
	)
	DedupeCollapsedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dedupe_collapsed_requests_total",
			Help: "Total number of requests collapsed into an in-flight call",
		},
		[]string{"key"},
	)
	MongoOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_operation_duration_seconds",
			Help:    "MongoDB operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)
	MongoErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_errors_total",
			Help: "Total number of MongoDB operation errors",
		},
		[]string{"operation", "collection"},
	)
	ScrapePagesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gis_scrape_pages_total",
			Help: "Total number of GIS result pages fetched",
		},
	)
	ScrapedParcelsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gis_scraped_parcels_total",
			Help: "Total number of parcels returned by GIS scrapes",
		},
	)
	ScrapeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gis_scrape_duration_seconds",
			Help:    "End-to-end GIS scrape duration in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)
)

// OperationLabel reduces a tenant-scoped cache key ("area:entity:org:user")
// to its base ("area:entity") for metric labels, so series cardinality stays
// bounded by the key table rather than growing with every tenant. Keys
// without a tenant suffix pass through unchanged.
func OperationLabel(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) < 4 {
		return key
	}
	return strings.Join(parts[:len(parts)-2], ":")
}

func Init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(DedupeCollapsedTotal)
	prometheus.MustRegister(MongoOperationDuration)
	prometheus.MustRegister(MongoErrorsTotal)
	prometheus.MustRegister(ScrapePagesTotal)
	prometheus.MustRegister(ScrapedParcelsTotal)
	prometheus.MustRegister(ScrapeDuration)
}
