package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes dashboard counters on a private registry.
type Metrics struct {
	registry      *prometheus.Registry
	runsTotal     *prometheus.CounterVec
	itemsTotal    prometheus.Counter
	runDuration   prometheus.Histogram
	queueLength   prometheus.Gauge
	runProgress   prometheus.Gauge
	intakeRejects prometheus.Counter
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enhancer_runs_total",
				Help: "Simulated enhancement runs by final status",
			},
			[]string{"status"},
		),
		itemsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "enhancer_items_enhanced_total",
			Help: "Queue items that finished a simulated enhancement",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "enhancer_run_duration_seconds",
			Help:    "Wall time of simulated enhancement runs",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 8),
		}),
		queueLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "enhancer_queue_length",
			Help: "Items currently waiting in the upload queue",
		}),
		runProgress: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "enhancer_run_progress_percent",
			Help: "Overall progress of the active run",
		}),
		intakeRejects: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "enhancer_intake_rejected_total",
			Help: "Selected paths that were not queued",
		}),
	}

	m.registry.MustRegister(
		m.runsTotal,
		m.itemsTotal,
		m.runDuration,
		m.queueLength,
		m.runProgress,
		m.intakeRejects,
	)
	return m
}

// RunFinished counts a run by status and records its duration.
func (m *Metrics) RunFinished(status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(status).Inc()
	m.runDuration.Observe(elapsed.Seconds())
}

// ItemEnhanced counts one finished item.
func (m *Metrics) ItemEnhanced() {
	if m == nil {
		return
	}
	m.itemsTotal.Inc()
}

// QueueLength sets the queue gauge.
func (m *Metrics) QueueLength(n int) {
	if m == nil {
		return
	}
	m.queueLength.Set(float64(n))
}

// Progress sets the progress gauge.
func (m *Metrics) Progress(p float64) {
	if m == nil {
		return
	}
	m.runProgress.Set(p)
}

// IntakeRejected counts paths dropped during intake.
func (m *Metrics) IntakeRejected(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.intakeRejects.Add(float64(n))
}

// Gatherer exposes the registry for tests and custom exporters.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
