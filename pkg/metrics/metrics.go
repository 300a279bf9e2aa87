package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Global traversal metrics, registered on the default registry by promauto.

var (
	// Iterators started, labeled by whether the depth is bounded.
	TraversalsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "friendgraph_traversals_started_total",
			Help: "Total number of friend traversals started",
		},
		[]string{"bounded"},
	)

	// Levels expanded across all traversals.
	LevelsExpanded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "friendgraph_levels_expanded_total",
			Help: "Total number of BFS levels expanded",
		},
	)

	// Records visited, split by whether the filter accepted them.
	RecordsVisited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "friendgraph_records_visited_total",
			Help: "Total number of records visited, by filter outcome",
		},
		[]string{"outcome"}, // "accepted" | "rejected"
	)

	// Friend names that did not resolve to a record.
	DanglingReferences = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "friendgraph_dangling_references_total",
			Help: "Total number of friend references skipped because the name is unknown",
		},
	)

	// Width of each expanded level before filtering.
	LevelWidth = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "friendgraph_level_width",
			Help:    "Number of names in a BFS level before filtering",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)
