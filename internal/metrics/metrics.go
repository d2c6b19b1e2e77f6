// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, thread assembly, comment
// mutations, exports, and database connections.
package metrics

import (
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "comment_threads"
)

// Mutation results.
const (
	ResultSuccess  = "success"
	ResultDenied   = "denied"
	ResultNotFound = "not_found"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Thread metrics - track forest assembly from stored rows
	ForestBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threads",
			Name:      "builds_total",
			Help:      "Total number of thread forests built by content kind",
		},
		[]string{"content_kind"},
	)

	ForestBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "threads",
			Name:      "build_duration_seconds",
			Help:      "Time to normalize, link, and order one content item's fetched comments",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"content_kind"},
	)

	ForestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "threads",
			Name:      "comments_per_item",
			Help:      "Number of comments placed in the forest per build",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
		[]string{"content_kind"},
	)

	MalformedRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threads",
			Name:      "malformed_rows_total",
			Help:      "Total number of stored rows dropped during normalization",
		},
		[]string{"content_kind"},
	)

	OrphansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threads",
			Name:      "orphans_total",
			Help:      "Total number of replies promoted to roots because their parent was missing",
		},
		[]string{"content_kind"},
	)

	BrokenCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threads",
			Name:      "broken_cycles_total",
			Help:      "Total number of parent cycles cut during forest assembly",
		},
		[]string{"content_kind"},
	)

	ExpansionTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threads",
			Name:      "expansion_toggles_total",
			Help:      "Total number of continuation toggles by resulting state",
		},
		[]string{"state"},
	)

	// Mutation metrics - track posts and deletes
	CommentMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comments",
			Name:      "mutations_total",
			Help:      "Total number of comment mutations by operation and result",
		},
		[]string{"operation", "result"},
	)

	AuthorizationDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comments",
			Name:      "authorization_denials_total",
			Help:      "Total number of refused actions by action and reason",
		},
		[]string{"action", "reason"},
	)

	// Streaming export metrics - track thread exports
	StreamingExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_total",
			Help:      "Total number of streaming exports by content kind, format, and result",
		},
		[]string{"content_kind", "format", "result"},
	)

	StreamingExportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "export_duration_seconds",
			Help:      "Streaming export duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"content_kind", "format"},
	)

	StreamingExportRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "records_total",
			Help:      "Total number of comments streamed by content kind and format",
		},
		[]string{"content_kind", "format"},
	)

	StreamingExportsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_in_flight",
			Help:      "Number of streaming exports currently in progress",
		},
		[]string{"content_kind"},
	)

	// Database metrics - track connection pool usage
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is an interface for getting pool statistics
// This allows for easier testing by mocking the pool stats
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

// pgxPoolAdapter adapts pgxpool.Pool to PoolStatsProvider
type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a new pool stats collector
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&pgxPoolAdapter{pool: pool})
}

// NewPoolStatsCollectorWithProvider creates a new pool stats collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// ForestStats summarizes one forest build.
type ForestStats struct {
	Comments  int
	Malformed int
	Orphans   int
	Cycles    int
}

// ObserveForestBuild records a completed forest build for a content kind.
func ObserveForestBuild(contentKind string, durationSeconds float64, stats ForestStats) {
	ForestBuildsTotal.WithLabelValues(contentKind).Inc()
	ForestBuildDuration.WithLabelValues(contentKind).Observe(durationSeconds)
	ForestSize.WithLabelValues(contentKind).Observe(float64(stats.Comments))

	if stats.Malformed > 0 {
		MalformedRowsTotal.WithLabelValues(contentKind).Add(float64(stats.Malformed))
	}
	if stats.Orphans > 0 {
		OrphansTotal.WithLabelValues(contentKind).Add(float64(stats.Orphans))
	}
	if stats.Cycles > 0 {
		BrokenCyclesTotal.WithLabelValues(contentKind).Add(float64(stats.Cycles))
	}
}

// ObserveMutation counts a post or delete by its outcome.
func ObserveMutation(operation, result string) {
	CommentMutationsTotal.WithLabelValues(operation, result).Inc()
}

// ObserveDenial counts an action refused by the moderation policy.
func ObserveDenial(action, reason string) {
	AuthorizationDenialsTotal.WithLabelValues(action, reason).Inc()
}

// ObserveToggle counts a continuation toggle by the state it left behind.
func ObserveToggle(expanded bool) {
	state := "collapsed"
	if expanded {
		state = "expanded"
	}
	ExpansionTogglesTotal.WithLabelValues(state).Inc()
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Seconds returns the elapsed time since the timer was created.
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// StartStreamingExport starts tracking a streaming export
func StartStreamingExport(contentKind string) {
	StreamingExportsInFlight.WithLabelValues(contentKind).Inc()
}

// EndStreamingExport ends tracking a streaming export and records metrics
func EndStreamingExport(contentKind, format, result string, durationSeconds float64, recordCount int) {
	StreamingExportsInFlight.WithLabelValues(contentKind).Dec()
	StreamingExportsTotal.WithLabelValues(contentKind, format, result).Inc()
	StreamingExportDuration.WithLabelValues(contentKind, format).Observe(durationSeconds)
	if recordCount > 0 {
		StreamingExportRecords.WithLabelValues(contentKind, format).Add(float64(recordCount))
	}
}
