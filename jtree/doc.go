// Package jtree builds a junction tree from a factor.Network: moralize the
// parent graph, triangulate it with a deterministic min-fill elimination
// ordering, extract the maximal cliques left behind by triangulation, and
// connect them with a maximum-weight spanning tree whose edge weights are
// separator sizes.
//
// Every step reuses the teacher's graph substrate: the moral graph and the
// clique spanning tree are both core.Graph values, elimination
// tie-breaking is a pure index comparison (no graph walk needed), and the
// spanning tree is Kruskal's algorithm run on descending weight instead of
// ascending (see spantree.go). Traversal order for downstream message
// passing is supplied by bfs.BFS over the resulting tree.
//
// Construction is one-shot: Build(network) either returns a complete,
// internally consistent *JunctionTree or an error; there is no partial
// state to observe on failure.
package jtree
