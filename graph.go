package main

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Graph is an undirected weighted graph over dense node indices [0, N).
// It is immutable once built and may be shared by sequential searches.
type Graph struct {
	Nodes []Point  // coordinates by index
	Edges [][]Edge // adjacency by index

	ids   []int       // index -> file id
	index map[int]int // file id -> index
	list  []WeightedEdge
}

// Edge represents a connection between two nodes with a cost
type Edge struct {
	To   int     // Index of the destination node
	Cost float64 // Edge weight
}

// WeightedEdge is an undirected edge between two node indices
type WeightedEdge struct {
	U, V   int
	Weight float64
}

// NewGraph builds a graph whose file ids equal its indices
func NewGraph(points []Point, edges []WeightedEdge) (*Graph, error) {
	ids := make([]int, len(points))
	for i := range ids {
		ids[i] = i
	}
	return newGraph(ids, points, edges)
}

// BuildGraph remaps the file ids of parsed tables to dense indices (in first-seen order)
// and builds the graph
func BuildGraph(tables *GraphTables) (*Graph, error) {
	index := make(map[int]int, len(tables.NodeIDs))
	points := make([]Point, len(tables.NodeIDs))
	for i, id := range tables.NodeIDs {
		index[id] = i
		points[i] = tables.Positions[id]
	}

	edges := make([]WeightedEdge, 0, len(tables.Edges))
	for n, decl := range tables.Edges {
		u, okU := index[decl.From]
		v, okV := index[decl.To]
		if !okU || !okV {
			return nil, &GraphError{
				Edge:   n,
				From:   decl.From,
				To:     decl.To,
				Reason: fmt.Sprintf("line %d references a node without a position declaration", decl.Line),
			}
		}
		edges = append(edges, WeightedEdge{U: u, V: v, Weight: decl.Weight})
	}

	return newGraph(tables.NodeIDs, points, edges)
}

func newGraph(ids []int, points []Point, edges []WeightedEdge) (*Graph, error) {
	n := len(points)
	graph := &Graph{
		Nodes: append([]Point(nil), points...),
		Edges: make([][]Edge, n),
		ids:   append([]int(nil), ids...),
		index: make(map[int]int, n),
		list:  make([]WeightedEdge, 0, len(edges)),
	}
	for i, id := range graph.ids {
		graph.index[id] = i
	}

	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, &GraphError{Edge: i, From: e.U, To: e.V, Reason: fmt.Sprintf("index out of range [0, %d)", n)}
		}
		if !isFiniteNonNegative(e.Weight) {
			return nil, &GraphError{Edge: i, From: e.U, To: e.V, Reason: fmt.Sprintf("weight %v must be finite and non-negative", e.Weight)}
		}

		// Add bidirectional edge
		graph.Edges[e.U] = append(graph.Edges[e.U], Edge{To: e.V, Cost: e.Weight})
		if e.U != e.V {
			graph.Edges[e.V] = append(graph.Edges[e.V], Edge{To: e.U, Cost: e.Weight})
		}
		graph.list = append(graph.list, e)
	}

	return graph, nil
}

// NodeCount returns N
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of undirected edges, parallel edges included
func (g *Graph) EdgeCount() int { return len(g.list) }

// Neighbors returns the edges leaving node i
func (g *Graph) Neighbors(i int) []Edge { return g.Edges[i] }

// EdgeList returns the undirected edges in insertion order
func (g *Graph) EdgeList() []WeightedEdge { return g.list }

// Weight returns the cheapest edge cost between u and v
func (g *Graph) Weight(u, v int) (float64, bool) {
	if u < 0 || u >= len(g.Edges) {
		return 0, false
	}
	best, found := 0.0, false
	for _, e := range g.Edges[u] {
		if e.To == v && (!found || e.Cost < best) {
			best, found = e.Cost, true
		}
	}
	return best, found
}

// ID returns the file id of node index i
func (g *Graph) ID(i int) int { return g.ids[i] }

// IndexOf returns the node index for a file id
func (g *Graph) IndexOf(id int) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Bounds returns the bounding box of all node coordinates
func (g *Graph) Bounds() BoundingBox {
	if len(g.Nodes) == 0 {
		return BoundingBox{}
	}
	bound := g.Nodes[0].Orb().Bound()
	for _, p := range g.Nodes[1:] {
		bound = bound.Extend(p.Orb())
	}
	return boundingBoxFromBound(bound)
}

// pathPoints converts node indices to an orb.LineString
func (g *Graph) pathPoints(path []int) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, n := range path {
		ls[i] = g.Nodes[n].Orb()
	}
	return ls
}
