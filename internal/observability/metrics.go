package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	FilesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "symgraph_files_processed_total",
		Help: "Total number of object files whose symbol tables were read.",
	})

	FilesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "symgraph_files_skipped_total",
		Help: "Total number of object files skipped due to per-file errors.",
	})

	SymbolsTracked = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "symgraph_symbols_tracked",
		Help: "Number of symbols in the global namespace.",
	})

	DefinitionConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "symgraph_definition_conflicts_total",
		Help: "Total number of symbols defined by more than one file.",
	})

	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "symgraph_graph_nodes_total",
		Help: "Total number of nodes in the dependency graph.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "symgraph_graph_edges_total",
		Help: "Total number of edges in the dependency graph.",
	})

	ParseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "symgraph_parse_seconds",
		Help:    "Time spent reading and classifying one object file.",
		Buckets: prometheus.DefBuckets,
	})
)
