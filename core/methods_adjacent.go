package core

import "sort"

// Neighbors lists the edges incident to id: for directed graphs only those
// with e.From==id (since edges are never mirrored), for undirected graphs
// every edge touching id (mirrored by AddEdge). Sorted by Edge.ID.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique, sorted vertex IDs adjacent to id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if e.From == id {
			ids = append(ids, e.To)
		} else {
			ids = append(ids, e.From)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// ensureAdjacency guarantees the presence of the adjacency bucket for from.
func ensureAdjacency(g *Graph, from string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]string)
	}
}

// removeAdjacency deletes e from from→to, and from to→from when e is
// undirected and not a self-loop.
func removeAdjacency(g *Graph, e *Edge) {
	delete(g.adjacency[e.From], e.To)
	if !e.Directed && e.From != e.To {
		delete(g.adjacency[e.To], e.From)
	}
}
