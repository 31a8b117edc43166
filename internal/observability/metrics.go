package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// sounding analysis pipeline.
type Metrics struct {
	SoundingsConsumed prometheus.Counter
	AnalysesProduced  prometheus.Counter
	SoundingsSkipped  *prometheus.CounterVec // label: reason={decode,insufficient_data,invalid_input}
	PipelineRunning   prometheus.Gauge

	AnalysisDuration prometheus.Histogram
	SurfaceCAPE      prometheus.Histogram

	CacheLookups *prometheus.CounterVec // label: result={hit,miss}
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		SoundingsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sounding",
			Name:      "soundings_consumed_total",
			Help:      "Total sounding messages read from the source topic.",
		}),
		AnalysesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sounding",
			Name:      "analyses_produced_total",
			Help:      "Total analysis records written to the sink topic.",
		}),
		SoundingsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sounding",
			Name:      "soundings_skipped_total",
			Help:      "Soundings skipped without an analysis, by reason.",
		}, []string{"reason"}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sounding",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sounding",
			Name:      "analysis_duration_seconds",
			Help:      "Duration of a complete extract-analyze-load cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		SurfaceCAPE: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sounding",
			Name:      "surface_cape_joules_per_kg",
			Help:      "Distribution of surface-based CAPE across analyzed soundings.",
			Buckets:   []float64{0, 100, 250, 500, 1000, 2000, 3000, 4000, 6000},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sounding",
			Name:      "analysis_cache_total",
			Help:      "Analysis cache lookups by result.",
		}, []string{"result"}),
	}

	prometheus.MustRegister(
		m.SoundingsConsumed,
		m.AnalysesProduced,
		m.SoundingsSkipped,
		m.PipelineRunning,
		m.AnalysisDuration,
		m.SurfaceCAPE,
		m.CacheLookups,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SoundingsConsumed: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sounding", Name: "soundings_consumed_total"}),
		AnalysesProduced:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sounding", Name: "analyses_produced_total"}),
		SoundingsSkipped:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "sounding", Name: "soundings_skipped_total"}, []string{"reason"}),
		PipelineRunning:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "sounding", Name: "pipeline_running"}),
		AnalysisDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "sounding", Name: "analysis_duration_seconds"}),
		SurfaceCAPE:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "sounding", Name: "surface_cape_joules_per_kg"}),
		CacheLookups:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "sounding", Name: "analysis_cache_total"}, []string{"result"}),
	}
}
