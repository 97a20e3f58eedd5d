package main

import (
	"math"
	"testing"
)

func TestEuclideanHeuristic(t *testing.T) {
	graph := mustGraph(t, []Point{{0, 0}, {3, 4}, {3, 0}}, nil)
	h := NewEuclideanHeuristic(graph, 1)

	tests := []struct {
		node int
		want float64
	}{
		{node: 0, want: 5},
		{node: 1, want: 0},
		{node: 2, want: 4},
	}
	for _, tt := range tests {
		if got := h.Estimate(tt.node); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Estimate(%d) = %v, want %v", tt.node, got, tt.want)
		}
	}
	if h.Name() != "euclidean" {
		t.Errorf("Name() = %q", h.Name())
	}
}

func TestManhattanHeuristic_SignedDifferences(t *testing.T) {
	// goal at the origin, interior node up and to the right of it
	graph := mustGraph(t, []Point{{0, 0}, {5, 5}, {-2, 3}, {1, -4}}, nil)
	h := NewManhattanHeuristic(graph, 0)

	tests := []struct {
		name string
		node int
		want float64
	}{
		{name: "goal left and below", node: 1, want: -10},
		{name: "goal right and below", node: 2, want: -1},
		{name: "goal left and above", node: 3, want: 3},
		{name: "goal itself", node: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Estimate(tt.node); got != tt.want {
				t.Errorf("Estimate(%d) = %v, want %v", tt.node, got, tt.want)
			}
		})
	}
}

func TestHeuristicByName(t *testing.T) {
	graph := mustGraph(t, []Point{{0, 0}}, nil)
	for _, name := range []string{"euclidean", "manhattan"} {
		factory, err := HeuristicByName(name)
		if err != nil {
			t.Fatalf("HeuristicByName(%q) error = %v", name, err)
		}
		if got := factory(graph, 0).Name(); got != name {
			t.Errorf("factory(%q).Name() = %q", name, got)
		}
	}
	if _, err := HeuristicByName("chebyshev"); err == nil {
		t.Error("HeuristicByName(chebyshev) succeeded")
	}
}
