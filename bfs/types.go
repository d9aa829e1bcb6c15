package bfs

import "errors"

// Sentinel errors for BFS.
var (
	// ErrGraphNil indicates a nil graph was passed to BFS.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound indicates the start vertex does not exist in
	// the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// BFSResult carries the outcome of a breadth-first walk from a single root.
type BFSResult struct {
	// Order holds every visited vertex ID in the order it was dequeued
	// (the root first) — the exact collect/distribute walk order jtree
	// needs.
	Order []string

	// Depth maps each visited vertex ID to its distance (edge count) from
	// the root.
	Depth map[string]int

	// Parent maps each visited vertex ID, except the root, to the ID of
	// the vertex it was discovered from.
	Parent map[string]string
}
