package preview

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics for the preview server.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "loom").
	Namespace string

	// Subsystem is the metrics subsystem (default: "preview").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render pass duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the preview metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets for pass duration.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "loom",
		Subsystem:   "preview",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	passesTotal     *prometheus.CounterVec
	passDuration    prometheus.Histogram
	passErrors      *prometheus.CounterVec
	nodesBuilt      prometheus.Histogram
	snapshotBytes   prometheus.Histogram
	clientsAttached prometheus.Gauge
	wsErrors        *prometheus.CounterVec
}

var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		passesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_passes_total",
			Help:        "Total number of render passes by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_pass_duration_seconds",
			Help:        "Render pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		passErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_pass_errors_total",
			Help:        "Total number of failed render passes by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		nodesBuilt: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_built",
			Help:        "Number of nodes built per render pass",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{10, 100, 1000, 10000, 100000},
		}),

		snapshotBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "snapshot_bytes",
			Help:        "Encoded snapshot size in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1024, 10240, 102400, 1048576, 10485760}, // 1KB to 10MB
		}),

		clientsAttached: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "clients_attached",
			Help:        "Number of attached preview WebSocket clients",
			ConstLabels: config.ConstLabels,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total WebSocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// Metrics initializes the preview metrics with the given options and
// returns them. Initialization happens once; later calls return the
// existing instance regardless of options.
func Metrics(opts ...MetricsOption) *Collector {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return &Collector{m: m}
}

// recordPass records a completed render pass.
func recordPass(seconds float64, nodes int, err error, code string) {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m == nil {
		return
	}

	m.passDuration.Observe(seconds)
	if err != nil {
		m.passesTotal.WithLabelValues("error").Inc()
		if code == "" {
			code = "internal"
		}
		m.passErrors.WithLabelValues(code).Inc()
		return
	}
	m.passesTotal.WithLabelValues("success").Inc()
	m.nodesBuilt.Observe(float64(nodes))
}

// recordSnapshot records the encoded size of a pushed snapshot.
func recordSnapshot(bytes int) {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m != nil {
		m.snapshotBytes.Observe(float64(bytes))
	}
}

// recordClientAttach records a WebSocket client attaching.
func recordClientAttach() {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m != nil {
		m.clientsAttached.Inc()
	}
}

// recordClientDetach records a WebSocket client detaching.
func recordClientDetach() {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m != nil {
		m.clientsAttached.Dec()
	}
}

// recordWebSocketError records a WebSocket error by type.
func recordWebSocketError(errorType string) {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m != nil {
		m.wsErrors.WithLabelValues(errorType).Inc()
	}
}

// Collector exposes the preview metrics for custom registrations and tests.
type Collector struct {
	m *metrics
}

// GetMetrics returns the global metrics collector.
// Returns nil if Metrics has not been called.
func GetMetrics() *Collector {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		return nil
	}
	return &Collector{m: globalMetrics}
}
