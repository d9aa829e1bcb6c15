package dfs

import "errors"

// Visitation state of a vertex during TopologicalSort's depth-first walk.
const (
	White = iota // not yet visited
	Gray         // on the current recursion stack
	Black        // fully explored
)

// Sentinel errors for TopologicalSort.
var (
	// ErrGraphNil indicates a nil *core.Graph was passed to TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates a cycle was found during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)
