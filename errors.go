package main

import (
	"errors"
	"fmt"
)

// ErrNoPath is returned by PathResult.Err when the goal was never settled
var ErrNoPath = errors.New("no path found")

// IOError reports a graph description that could not be opened or read.
// Callers may recover by asking for a different path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read graph file %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a malformed field on a recognized declaration line
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line content
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// GraphError reports an edge that cannot be placed in the graph
type GraphError struct {
	Edge   int // position of the edge in the input table
	From   int
	To     int
	Reason string
}

func (e *GraphError) Error() string {
	return fmt.Sprintf("invalid edge #%d (%d -- %d): %s", e.Edge, e.From, e.To, e.Reason)
}

// PreconditionError reports a start or goal index outside the graph
type PreconditionError struct {
	Role      string // "start" or "goal"
	Index     int
	NodeCount int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Role, e.Index, e.NodeCount)
}
