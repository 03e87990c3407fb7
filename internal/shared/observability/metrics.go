package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	EnvironmentBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "importprune_environment_build_seconds",
		Help:    "Time spent building the package-wide symbol environment.",
		Buckets: prometheus.DefBuckets,
	})

	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "importprune_analysis_seconds",
		Help:    "Time spent on high-level analysis tasks.",
		Buckets: prometheus.DefBuckets,
	}, []string{"task"})

	ModulesAnalyzedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "importprune_modules_analyzed_total",
		Help: "Total number of modules run through the import pruner.",
	})

	UnusedImportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "importprune_unused_imports_total",
		Help: "Total number of import declarations reported unused.",
	}, []string{"reason"})

	UnknownImportsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "importprune_unknown_imports_skipped_total",
		Help: "Total number of imports left untouched because their module is absent from the environment.",
	})

	EnvironmentModules = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "importprune_environment_modules_total",
		Help: "Number of exposed modules in the last built environment.",
	})
)
