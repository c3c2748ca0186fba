// Package metrics provides Prometheus metrics for the tombola raffle service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the raffle service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Draw metrics - the business core.
	drawsExecuted prometheus.Counter
	drawsRejected prometheus.Counter
	drawsBusy     prometheus.Counter
	winnersDrawn  prometheus.Counter
	spinTicks     prometheus.Counter
	drawDuration  prometheus.Histogram

	// State gauges - current raffle inventory.
	ticketsAvailable prometheus.Gauge
	prizesAvailable  prometheus.Gauge
	prizesTotal      prometheus.Gauge
	ownersTotal      prometheus.Gauge
	historyEntries   prometheus.Gauge

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// History store metrics.
	historyPrependLatency prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tombola",
		subsystem:        "raffle",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.drawsExecuted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "draws_executed_total",
		Help:      "Total number of draws that committed results",
	})

	m.drawsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "draws_rejected_total",
		Help:      "Total number of draw requests rejected for insufficient tickets or prizes",
	})

	m.drawsBusy = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "draws_busy_total",
		Help:      "Total number of draw requests refused because a draw was already in flight",
	})

	m.winnersDrawn = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "winners_drawn_total",
		Help:      "Total number of winning tickets selected across all draws",
	})

	m.spinTicks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "spin_ticks_total",
		Help:      "Total number of cosmetic spinner ticks emitted during draws",
	})

	m.drawDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "draw_duration_milliseconds",
		Help:      "Histogram of full draw duration in milliseconds, cosmetic phase included",
		Buckets:   m.histogramBuckets,
	})

	m.ticketsAvailable = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tickets_available",
		Help:      "Current number of tickets eligible for a draw",
	})

	m.prizesAvailable = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "prizes_available",
		Help:      "Current number of unassigned prizes across all categories",
	})

	m.prizesTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "prizes_total",
		Help:      "Current number of prizes in the catalog",
	})

	m.ownersTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "owners_total",
		Help:      "Current number of owners in the directory",
	})

	m.historyEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_entries",
		Help:      "Current number of entries in the draw history",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of HTTP error responses by endpoint and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.historyPrependLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "history_prepend_latency_milliseconds",
		Help:      "History store prepend latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// GetRegistry returns the Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers recording through the global manager.

// RecordDrawExecuted increments the committed-draw counter.
func RecordDrawExecuted() { globalManager.drawsExecuted.Inc() }

// RecordDrawRejected increments the insufficient-tickets/prizes counter.
func RecordDrawRejected() { globalManager.drawsRejected.Inc() }

// RecordDrawBusy increments the draw-in-flight refusal counter.
func RecordDrawBusy() { globalManager.drawsBusy.Inc() }

// RecordWinners adds n to the winners counter.
func RecordWinners(n int) { globalManager.winnersDrawn.Add(float64(n)) }

// RecordSpinTick increments the cosmetic tick counter.
func RecordSpinTick() { globalManager.spinTicks.Inc() }

// RecordDrawDuration observes a full draw duration in milliseconds.
func RecordDrawDuration(ms float64) { globalManager.drawDuration.Observe(ms) }

// UpdateTicketsAvailable sets the tickets gauge.
func UpdateTicketsAvailable(n int) { globalManager.ticketsAvailable.Set(float64(n)) }

// UpdatePrizesAvailable sets the unassigned-prize gauge.
func UpdatePrizesAvailable(n int) { globalManager.prizesAvailable.Set(float64(n)) }

// UpdatePrizesTotal sets the total-prize gauge.
func UpdatePrizesTotal(n int) { globalManager.prizesTotal.Set(float64(n)) }

// UpdateOwnersTotal sets the owner gauge.
func UpdateOwnersTotal(n int) { globalManager.ownersTotal.Set(float64(n)) }

// UpdateHistoryEntries sets the history gauge.
func UpdateHistoryEntries(n int) { globalManager.historyEntries.Set(float64(n)) }

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes an HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// RecordErrorByEndpoint increments the endpoint error counter.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordHistoryPrependLatency observes a history store prepend in milliseconds.
func RecordHistoryPrependLatency(ms float64) {
	globalManager.historyPrependLatency.Observe(ms)
}
