// Package core defines the Graph and Edge types that the junction-tree
// substrate (package jtree) and the network validator (package factor) build
// on top of: a plain adjacency-map graph, directed or undirected, with no
// weights, no multi-edges, and no self-loops — the only shapes those two
// packages ever construct.
//
// factor.Network.Validate builds a transient directed Graph (one vertex per
// node ID, one edge per parent→child relationship) and hands it to
// dfs.TopologicalSort to reject cyclic networks. jtree.Build builds two
// undirected Graphs: the moral graph that triangulate consumes, and the
// clique spanning tree that buildSpanningTree returns as the junction
// tree, walked by bfs.BFS for collect/distribute ordering.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge represents a connection between two vertices.
//
// Directed reports whether the edge is one-way (From→To only) or mirrored
// both ways; it always matches the owning Graph's own directedness, since
// this package has no notion of per-edge overrides.
type Edge struct {
	ID       string
	From     string
	To       string
	Directed bool
}

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are directed (From→To only) or
// undirected (mirrored both ways). Undirected is the default.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a plain in-memory graph: a vertex set, an edge catalog, and an
// adjacency map keyed by vertex ID. It is not safe for concurrent use —
// every Graph this module builds is constructed and walked within a single
// call (Network.Validate, jtree.Build), never shared across goroutines.
type Graph struct {
	directed   bool
	nextEdgeID uint64

	vertices  map[string]struct{}
	edges     map[string]*Edge
	adjacency map[string]map[string]string // from -> to -> edge ID
}

// NewGraph creates an empty Graph. By default it is undirected.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph's edges are directed.
func (g *Graph) Directed() bool { return g.directed }
