package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the shared tracer for analysis spans. Exporter setup is the
// host's responsibility; without one these spans are no-ops.
var Tracer trace.Tracer = otel.Tracer("archdrift")

// Metrics definitions
var (
	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "archdrift_graph_nodes_total",
		Help: "Number of component nodes in the most recently built graph.",
	})

	GraphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "archdrift_graph_edges_total",
		Help: "Number of dependency edges in the most recently built graph.",
	})

	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "archdrift_analysis_seconds",
		Help:    "Time spent on analysis tasks.",
		Buckets: prometheus.DefBuckets,
	}, []string{"task"})

	RecordsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "archdrift_records_skipped_total",
		Help: "Total number of malformed file records skipped during graph builds.",
	})

	DetectorFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "archdrift_detector_failures_total",
		Help: "Total number of detector runs that failed and were isolated.",
	}, []string{"detector"})

	CycleTruncationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "archdrift_cycle_truncations_total",
		Help: "Total number of cycle enumerations truncated at the configured cap.",
	})
)
