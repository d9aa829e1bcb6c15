package core

import (
	"sort"
	"strconv"
)

// AddEdge creates an edge from→to. Directedness follows the graph's own
// WithDirected setting; undirected edges are mirrored into to→from. The
// domain never builds multigraphs, so a repeated (from,to) pair simply
// overwrites the prior edge ID in the adjacency map — every caller in this
// module adds each pair at most once.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)

	e := &Edge{ID: eid, From: from, To: to, Directed: g.directed}
	g.edges[eid] = e

	ensureAdjacency(g, from)
	g.adjacency[from][to] = eid
	if !g.directed && from != to {
		ensureAdjacency(g, to)
		g.adjacency[to][from] = eid
	}

	return eid, nil
}

// HasEdge reports whether an edge from→to exists. Undirected edges are
// mirrored by AddEdge, so HasEdge(to, from) also reports true for them.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	_, ok := g.adjacency[from][to]

	return ok
}

// Edges returns all edges sorted by Edge.ID ascending.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
