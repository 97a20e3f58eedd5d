package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"
)

// RunComparison runs one independent search per heuristic against the same graph and
// start/goal pair, in order
func RunComparison(ctx context.Context, graph *Graph, start, goal int, heuristics []HeuristicFactory) ([]*PathResult, error) {
	if err := checkEndpoints(graph, start, goal); err != nil {
		return nil, err
	}

	results := make([]*PathResult, 0, len(heuristics))
	for _, newHeuristic := range heuristics {
		begin := time.Now()
		result, err := AStar(ctx, graph, start, goal, newHeuristic)
		if err != nil {
			return nil, fmt.Errorf("failed to run search: %w", err)
		}
		result.Elapsed = time.Since(begin)
		observeSearch(result)

		if result.Found {
			log.Printf("🔍 %s: %d waypoints, cost %.4f, %d nodes settled\n",
				result.Heuristic, len(result.Path), result.Cost, result.Expanded)
		} else {
			log.Printf("❌ %s: no path after settling %d nodes\n", result.Heuristic, result.Expanded)
		}
		results = append(results, result)
	}

	return results, nil
}

// WriteReport prints one block per search result
func WriteReport(w io.Writer, graph *Graph, results []*PathResult) error {
	for _, r := range results {
		startID, goalID := graph.ID(r.Start), graph.ID(r.Goal)
		var err error
		if r.Found {
			_, err = fmt.Fprintf(w, "Using %s heuristic:\nShortest path from %d to %d: %s\nTotal travel time: %g\n",
				r.Heuristic, startID, goalID, r.FormatPath(), r.Cost)
			if err == nil {
				if meters, ok := r.LengthMeters(); ok {
					_, err = fmt.Fprintf(w, "Geodesic length: %.2f meters\n", meters)
				}
			}
		} else {
			_, err = fmt.Fprintf(w, "Using %s heuristic:\nDidn't find a path from %d to %d!\n", r.Heuristic, startID, goalID)
		}
		if err == nil {
			_, err = fmt.Fprintf(w, "Nodes settled: %d\nBenchmark: %.6f seconds\n\n", r.Expanded, r.Elapsed.Seconds())
		}
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}
