package main

import (
	"container/heap"
	"context"
)

// searchItem is a frontier entry in the A* open set
type searchItem struct {
	NodeID int     // Index of the node in the graph
	G      float64 // Cost from start to this node
	F      float64 // Total cost (G + H)
	Seq    uint64  // Insertion order, breaks ties between equal F
	Index  int     // Index in the heap
}

// PriorityQueue implements heap.Interface for the A* open set
type PriorityQueue []*searchItem

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].F != pq[j].F {
		return pq[i].F < pq[j].F
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*searchItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.Index = -1
	*pq = old[0 : n-1]
	return item
}

type nodeState uint8

const (
	unvisited nodeState = iota
	frontier
	settled
)

// searchState is the per-run bookkeeping of one A* invocation
type searchState struct {
	g     []float64
	pred  []int
	state []nodeState
	open  []*searchItem // frontier entry per node, nil when not in the open set

	start, goal int
	expanded    int
	found       bool
}

func newSearchState(n, start, goal int) *searchState {
	st := &searchState{
		g:     make([]float64, n),
		pred:  make([]int, n),
		state: make([]nodeState, n),
		open:  make([]*searchItem, n),
		start: start,
		goal:  goal,
	}
	for i := range st.pred {
		st.pred[i] = -1
	}
	st.pred[start] = start
	return st
}

// checkEndpoints validates start and goal before a search begins
func checkEndpoints(graph *Graph, start, goal int) error {
	n := graph.NodeCount()
	if start < 0 || start >= n {
		return &PreconditionError{Role: "start", Index: start, NodeCount: n}
	}
	if goal < 0 || goal >= n {
		return &PreconditionError{Role: "goal", Index: goal, NodeCount: n}
	}
	return nil
}

// AStar computes the shortest path from start to goal (node indices) with the heuristic
// produced by newHeuristic. A missing path is reported through PathResult.Found, not as an
// error; errors are reserved for bad endpoints and context cancellation.
func AStar(ctx context.Context, graph *Graph, start, goal int, newHeuristic HeuristicFactory) (*PathResult, error) {
	if err := checkEndpoints(graph, start, goal); err != nil {
		return nil, err
	}
	heuristic := newHeuristic(graph, goal)

	st, err := runSearch(ctx, graph, heuristic, start, goal)
	if err != nil {
		return nil, err
	}
	return st.result(graph, heuristic.Name()), nil
}

func runSearch(ctx context.Context, graph *Graph, heuristic Heuristic, start, goal int) (*searchState, error) {
	st := newSearchState(graph.NodeCount(), start, goal)

	openSet := &PriorityQueue{}
	heap.Init(openSet)

	var seq uint64
	startItem := &searchItem{NodeID: start, G: 0, F: heuristic.Estimate(start), Seq: seq}
	heap.Push(openSet, startItem)
	st.open[start] = startItem
	st.state[start] = frontier

	for openSet.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := heap.Pop(openSet).(*searchItem)
		st.open[current.NodeID] = nil
		st.state[current.NodeID] = settled
		st.expanded++

		// Stop as soon as the goal is selected; the rest of the graph is never settled
		if current.NodeID == goal {
			st.found = true
			break
		}

		for _, edge := range graph.Edges[current.NodeID] {
			neighborID := edge.To
			if st.state[neighborID] == settled {
				continue
			}

			tentativeG := st.g[current.NodeID] + edge.Cost
			if st.state[neighborID] == frontier && tentativeG >= st.g[neighborID] {
				continue
			}

			st.g[neighborID] = tentativeG
			st.pred[neighborID] = current.NodeID
			seq++

			f := tentativeG + heuristic.Estimate(neighborID)
			if item := st.open[neighborID]; item != nil {
				// Found a better path to this neighbor
				item.G = tentativeG
				item.F = f
				item.Seq = seq
				heap.Fix(openSet, item.Index)
				continue
			}

			item := &searchItem{NodeID: neighborID, G: tentativeG, F: f, Seq: seq}
			heap.Push(openSet, item)
			st.open[neighborID] = item
			st.state[neighborID] = frontier
		}
	}

	return st, nil
}

// reconstructPath follows predecessor links from the goal back to the start, which is its
// own predecessor, and returns the indices in start-to-goal order
func (st *searchState) reconstructPath() []int {
	path := []int{st.goal}
	for v := st.goal; st.pred[v] != v; {
		v = st.pred[v]
		path = append(path, v)
		if len(path) > len(st.pred) {
			// broken predecessor chain
			return nil
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (st *searchState) result(graph *Graph, heuristicName string) *PathResult {
	if !st.found {
		return newNotFound(heuristicName, st.start, st.goal, st.expanded)
	}
	path := st.reconstructPath()
	if path == nil {
		return newNotFound(heuristicName, st.start, st.goal, st.expanded)
	}
	return newPathResult(graph, heuristicName, path, st.g[st.goal], st.expanded)
}
