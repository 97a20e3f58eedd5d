package main

import "fmt"

// Heuristic estimates the remaining cost from a node to the goal fixed at construction
type Heuristic interface {
	Name() string
	Estimate(node int) float64
}

// HeuristicFactory binds a heuristic to a graph and goal node
type HeuristicFactory func(graph *Graph, goal int) Heuristic

// EuclideanHeuristic is the straight-line distance to the goal
type EuclideanHeuristic struct {
	nodes []Point
	goal  Point
}

// NewEuclideanHeuristic creates a Euclidean heuristic for the given goal index
func NewEuclideanHeuristic(graph *Graph, goal int) Heuristic {
	return &EuclideanHeuristic{nodes: graph.Nodes, goal: graph.Nodes[goal]}
}

func (h *EuclideanHeuristic) Name() string { return "euclidean" }

func (h *EuclideanHeuristic) Estimate(node int) float64 {
	return h.nodes[node].Distance(h.goal)
}

// ManhattanHeuristic sums the signed coordinate differences goal - node, without taking
// absolute values. The estimate is negative whenever the goal lies below or left of the node.
type ManhattanHeuristic struct {
	nodes []Point
	goal  Point
}

// NewManhattanHeuristic creates a signed Manhattan heuristic for the given goal index
func NewManhattanHeuristic(graph *Graph, goal int) Heuristic {
	return &ManhattanHeuristic{nodes: graph.Nodes, goal: graph.Nodes[goal]}
}

func (h *ManhattanHeuristic) Name() string { return "manhattan" }

func (h *ManhattanHeuristic) Estimate(node int) float64 {
	dx := h.goal.X - h.nodes[node].X
	dy := h.goal.Y - h.nodes[node].Y
	return dx + dy
}

// Heuristics lists the comparison order used by RunComparison
var Heuristics = []HeuristicFactory{
	NewEuclideanHeuristic,
	NewManhattanHeuristic,
}

// HeuristicByName resolves a heuristic factory from its name
func HeuristicByName(name string) (HeuristicFactory, error) {
	switch name {
	case "euclidean":
		return NewEuclideanHeuristic, nil
	case "manhattan":
		return NewManhattanHeuristic, nil
	}
	return nil, fmt.Errorf("unknown heuristic %q", name)
}
