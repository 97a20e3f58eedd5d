package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// astarSearchesTotal counts finished searches per heuristic and outcome
	astarSearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "astar_searches_total",
			Help: "Total number of A* searches run",
		},
		[]string{"heuristic", "outcome"},
	)

	// astarExpandedNodes tracks how many nodes each search settled
	astarExpandedNodes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "astar_expanded_nodes",
			Help:    "Nodes settled per A* search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"heuristic"},
	)

	// astarSearchSeconds tracks wall-clock time per search
	astarSearchSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "astar_search_seconds",
			Help:    "Wall-clock duration of A* searches",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"heuristic"},
	)

	// parseWarningsTotal counts non-fatal data-quality warnings raised while parsing
	parseWarningsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "astar_parse_warnings_total",
			Help: "Total number of graph description warnings, such as edges without a weight",
		},
	)
)

func init() {
	// Register metrics with the default registry
	prometheus.MustRegister(astarSearchesTotal)
	prometheus.MustRegister(astarExpandedNodes)
	prometheus.MustRegister(astarSearchSeconds)
	prometheus.MustRegister(parseWarningsTotal)
}

func observeSearch(result *PathResult) {
	outcome := "found"
	if !result.Found {
		outcome = "no_path"
	}
	astarSearchesTotal.WithLabelValues(result.Heuristic, outcome).Inc()
	astarExpandedNodes.WithLabelValues(result.Heuristic).Observe(float64(result.Expanded))
	astarSearchSeconds.WithLabelValues(result.Heuristic).Observe(result.Elapsed.Seconds())
}

// WriteMetricsFile dumps the default registry in the text exposition format
func WriteMetricsFile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
