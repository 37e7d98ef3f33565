package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xfumihiro/elixium-core/pkg/config"
)

// CompileMetrics tracks per-contract instrumentation outcomes.
//
// Metrics:
//   - elixium_instrument_compilations_total: compilations by status
//   - elixium_instrument_gamma_static: static gamma schedule per contract
//   - elixium_instrument_charges: metering calls inserted per contract
//   - elixium_instrument_tree_nodes: input tree size per contract
//   - elixium_instrument_diagnostics_total: soft cost-evaluation fallbacks
//   - elixium_instrument_duration_seconds: wall time per compilation
type CompileMetrics struct {
	compilations *prometheus.CounterVec
	gammaStatic  prometheus.Histogram
	charges      prometheus.Histogram
	treeNodes    prometheus.Histogram
	diagnostics  prometheus.Counter
	duration     prometheus.Histogram

	registry *prometheus.Registry
}

// NewCompileMetrics creates and registers compilation metrics on a fresh
// registry.
func NewCompileMetrics(cfg config.MetricsConfig) *CompileMetrics {
	registry := prometheus.NewRegistry()

	cm := &CompileMetrics{
		registry: registry,

		compilations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "compilations_total",
				Help:      "Contract compilations by outcome status",
			},
			[]string{"status"},
		),

		gammaStatic: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "gamma_static",
				Help:      "Total static gamma charged per instrumented contract",
				Buckets:   prometheus.ExponentialBuckets(10, 10, 8),
			},
		),

		charges: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "charges",
				Help:      "Metering calls inserted per instrumented contract",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
			},
		),

		treeNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "tree_nodes",
				Help:      "Input tree node count per contract",
				Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
			},
		),

		diagnostics: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "diagnostics_total",
				Help:      "Node kinds priced at zero gamma by the soft fallback path",
			},
		),

		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "duration_seconds",
				Help:      "Wall time per contract compilation",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	registry.MustRegister(
		cm.compilations,
		cm.gammaStatic,
		cm.charges,
		cm.treeNodes,
		cm.diagnostics,
		cm.duration,
	)

	return cm
}

// RecordSuccess records a completed compilation.
func (cm *CompileMetrics) RecordSuccess(staticGamma float64, charges, treeNodes, diagnostics int, seconds float64) {
	cm.compilations.WithLabelValues("success").Inc()
	cm.gammaStatic.Observe(staticGamma)
	cm.charges.Observe(float64(charges))
	cm.treeNodes.Observe(float64(treeNodes))
	cm.diagnostics.Add(float64(diagnostics))
	cm.duration.Observe(seconds)
}

// RecordRejection records a contract rejected with the given error category.
func (cm *CompileMetrics) RecordRejection(category string) {
	cm.compilations.WithLabelValues("rejected_" + category).Inc()
}

// Handler returns an HTTP handler exposing the registry in Prometheus text
// format.
func (cm *CompileMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(cm.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for test gathering.
func (cm *CompileMetrics) Registry() *prometheus.Registry {
	return cm.registry
}
