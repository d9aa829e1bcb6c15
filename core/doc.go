// Package core is the plain graph substrate bnrec's junction-tree pipeline
// builds on: a vertex set, an edge catalog, and an adjacency map, directed
// or undirected, with no weights and no multi-edges.
//
// factor.Network.Validate builds a transient directed Graph (one vertex per
// node ID, one edge per parent→child relationship) and hands it to
// dfs.TopologicalSort to reject cyclic networks. jtree.Build builds two
// undirected Graphs: the moral graph that triangulate fills in, and the
// maximum-weight spanning tree over the cliques that forms the junction
// tree, walked by bfs.BFS for collect/distribute ordering.
//
// Methods:
//
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	RemoveVertex(id string) error
//	Vertices() []string
//	VertexCount() int
//	AddEdge(from, to string) (edgeID string, err error)
//	HasEdge(from, to string) bool
//	Edges() []*Edge
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	Directed() bool
//
// Vertices() and Edges() are sorted, so algorithms built on top (moralize,
// triangulate, the spanning-tree builder) get reproducible iteration order
// without sorting themselves.
package core
