package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the blog module.
// Tracks manifest reloads, content fetches, and cache effectiveness.
type Metrics struct {
	ManifestPostsAccepted prometheus.Counter
	ManifestPostsRejected prometheus.Counter
	ContentFetches        *prometheus.CounterVec
	CacheHits             prometheus.Counter
	CacheMisses           prometheus.Counter
	ReloadDuration        prometheus.Histogram
}

// New creates a new Metrics instance with all blog module metrics registered.
func New() *Metrics {
	return &Metrics{
		ManifestPostsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inkwell_manifest_posts_accepted_total",
			Help: "Total number of manifest entries accepted as posts",
		}),
		ManifestPostsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inkwell_manifest_posts_rejected_total",
			Help: "Total number of manifest entries rejected during validation",
		}),
		ContentFetches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "inkwell_content_fetches_total",
			Help: "Total content fetches by source and outcome",
		}, []string{"source", "outcome"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inkwell_content_cache_hits_total",
			Help: "Total content reads served from cache",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "inkwell_content_cache_misses_total",
			Help: "Total content reads that missed the cache",
		}),
		ReloadDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "inkwell_manifest_reload_duration_seconds",
			Help:    "Duration of manifest reloads",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementAccepted records a manifest entry accepted as a post.
// Safe on a nil receiver so metrics stay optional in tests.
func (m *Metrics) IncrementAccepted() {
	if m == nil {
		return
	}
	m.ManifestPostsAccepted.Inc()
}

// IncrementRejected records a manifest entry that failed validation.
func (m *Metrics) IncrementRejected() {
	if m == nil {
		return
	}
	m.ManifestPostsRejected.Inc()
}

// IncrementFetch records a content fetch against a source with an outcome
// of "ok" or "error".
func (m *Metrics) IncrementFetch(source, outcome string) {
	if m == nil {
		return
	}
	m.ContentFetches.WithLabelValues(source, outcome).Inc()
}

// IncrementCacheHit records a content read served from cache.
func (m *Metrics) IncrementCacheHit() {
	if m == nil {
		return
	}
	m.CacheHits.Inc()
}

// IncrementCacheMiss records a content read that went to a source.
func (m *Metrics) IncrementCacheMiss() {
	if m == nil {
		return
	}
	m.CacheMisses.Inc()
}

// ObserveReload records the duration of a manifest reload.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveReload(start time.Time) {
	if m == nil {
		return
	}
	m.ReloadDuration.Observe(time.Since(start).Seconds())
}
