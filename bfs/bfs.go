package bfs

import "github.com/bayeshint/bnrec/core"

// BFS performs a breadth-first traversal of g starting at startID, visiting
// every vertex reachable from the root exactly once. jtree always calls it
// on a connected undirected tree, so Order always covers every vertex in g.
// Because core.Graph.NeighborIDs returns sorted neighbor IDs, the visit
// order is fully reproducible.
func BFS(g *core.Graph, startID string) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	res := &BFSResult{
		Order:  make([]string, 0, g.VertexCount()),
		Depth:  map[string]int{startID: 0},
		Parent: make(map[string]string),
	}

	queue := []string{startID}
	visited := map[string]struct{}{startID: {}}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)

		neighborIDs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		for _, nid := range neighborIDs {
			if _, seen := visited[nid]; seen {
				continue
			}
			visited[nid] = struct{}{}
			res.Depth[nid] = res.Depth[id] + 1
			res.Parent[nid] = id
			queue = append(queue, nid)
		}
	}

	return res, nil
}
