package main

import (
	"github.com/dhconnelly/rtreego"
)

// nodeEntry wraps a graph node for R-tree storage
type nodeEntry struct {
	Index int
	BBox  rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (n *nodeEntry) Bounds() rtreego.Rect {
	return n.BBox
}

// NodeLocator resolves coordinates to graph nodes
type NodeLocator struct {
	tree *rtreego.Rtree
}

// pointTolerance gives point entries a non-degenerate rectangle
const pointTolerance = 1e-9

// NewNodeLocator indexes every node of the graph
func NewNodeLocator(graph *Graph) *NodeLocator {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for i, p := range graph.Nodes {
		tree.Insert(&nodeEntry{
			Index: i,
			BBox:  rtreego.Point{p.X, p.Y}.ToRect(pointTolerance),
		})
	}

	return &NodeLocator{tree: tree}
}

// Nearest returns the index of the node closest to p, or false for an empty graph
func (l *NodeLocator) Nearest(p Point) (int, bool) {
	if l.tree.Size() == 0 {
		return -1, false
	}
	item := l.tree.NearestNeighbor(rtreego.Point{p.X, p.Y})
	if item == nil {
		return -1, false
	}
	return item.(*nodeEntry).Index, true
}

// Within returns the indices of nodes inside the bounding box
func (l *NodeLocator) Within(box BoundingBox) []int {
	rect, err := rtreego.NewRect(
		rtreego.Point{box.MinX, box.MinY},
		[]float64{box.MaxX - box.MinX, box.MaxY - box.MinY},
	)
	if err != nil {
		return []int{}
	}

	results := l.tree.SearchIntersect(rect)
	indices := make([]int, 0, len(results))
	for _, item := range results {
		indices = append(indices, item.(*nodeEntry).Index)
	}
	return indices
}
