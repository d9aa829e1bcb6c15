package jtree

import (
	"strconv"

	"github.com/bayeshint/bnrec/core"
	"github.com/bayeshint/bnrec/factor"
)

// nodeVertexID renders a node index as the vertex ID used inside the
// transient graphs this package builds. Tie-breaking during triangulation
// never relies on string ordering of these IDs — only on the integer
// indices themselves — so the textual form only has to be stable, not
// sorted.
func nodeVertexID(index int) string { return strconv.Itoa(index) }

// moralize builds the undirected moral graph of network: every parent-child
// edge, plus an edge between every pair of a node's co-parents ("marrying"
// them). Self-loops and repeated edges are never added: addUndirectedOnce
// skips both.
func moralize(network *factor.Network) *core.Graph {
	g := core.NewGraph(core.WithDirected(false))
	nodes := network.Nodes()
	for _, nd := range nodes {
		_ = g.AddVertex(nodeVertexID(nd.Index()))
	}
	for _, nd := range nodes {
		parents := nd.Parents()
		// Parent-child edges.
		for _, p := range parents {
			addUndirectedOnce(g, nodeVertexID(p.Index()), nodeVertexID(nd.Index()))
		}
		// Marry every pair of co-parents.
		for i := 0; i < len(parents); i++ {
			for j := i + 1; j < len(parents); j++ {
				addUndirectedOnce(g, nodeVertexID(parents[i].Index()), nodeVertexID(parents[j].Index()))
			}
		}
	}

	return g
}

// addUndirectedOnce adds the edge u-v unless it already exists; moralization
// routinely tries to add the same edge from multiple directions (a node
// with three parents marries each pair once per child, but two children can
// share a co-parent pair).
func addUndirectedOnce(g *core.Graph, u, v string) {
	if u == v || g.HasEdge(u, v) {
		return
	}
	_, _ = g.AddEdge(u, v)
}
