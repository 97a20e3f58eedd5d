package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// PathResult is the outcome of one search: the path from start to goal (inclusive)
// and its total cost, or Found == false when the goal is unreachable
type PathResult struct {
	Heuristic string        `json:"heuristic"`
	Found     bool          `json:"found"`
	Start     int           `json:"start"`
	Goal      int           `json:"goal"`
	Path      []int         `json:"path,omitempty"` // node indices
	IDs       []int         `json:"ids,omitempty"`  // file ids along the path
	Cost      float64       `json:"cost"`
	Expanded  int           `json:"expanded"`
	Elapsed   time.Duration `json:"elapsed"`

	line orb.LineString
}

func newPathResult(graph *Graph, heuristic string, path []int, cost float64, expanded int) *PathResult {
	ids := make([]int, len(path))
	for i, n := range path {
		ids[i] = graph.ID(n)
	}
	return &PathResult{
		Heuristic: heuristic,
		Found:     true,
		Start:     path[0],
		Goal:      path[len(path)-1],
		Path:      path,
		IDs:       ids,
		Cost:      cost,
		Expanded:  expanded,
		line:      graph.pathPoints(path),
	}
}

func newNotFound(heuristic string, start, goal, expanded int) *PathResult {
	return &PathResult{
		Heuristic: heuristic,
		Start:     start,
		Goal:      goal,
		Expanded:  expanded,
	}
}

// Err returns ErrNoPath when the search did not reach the goal
func (r *PathResult) Err() error {
	if r.Found {
		return nil
	}
	return ErrNoPath
}

// LineString returns the path geometry
func (r *PathResult) LineString() orb.LineString { return r.line }

// LengthMeters returns the geodesic length of the path when its coordinates are lng/lat
func (r *PathResult) LengthMeters() (float64, bool) {
	if len(r.line) == 0 {
		return 0, false
	}
	var total float64
	for i := 0; i < len(r.line); i++ {
		p := Point{X: r.line[i].X(), Y: r.line[i].Y()}
		if !p.IsGeographic() {
			return 0, false
		}
		if i > 0 {
			total += Point{X: r.line[i-1].X(), Y: r.line[i-1].Y()}.DistanceMeters(p)
		}
	}
	return total, true
}

// FormatPath renders the file ids as "a -> b -> c"
func (r *PathResult) FormatPath() string {
	parts := make([]string, len(r.IDs))
	for i, id := range r.IDs {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, " -> ")
}
