package jtree

import (
	"sort"
	"strconv"

	"github.com/bayeshint/bnrec/core"
)

// cliquePair is a candidate edge of the clique-intersection graph before
// spanning-tree selection.
type cliquePair struct {
	i, j   int // clique IDs, i < j
	weight int // |clique[i] ∩ clique[j]|
	sep    []int
}

// buildSpanningTree connects the given maximal cliques (indexed by their
// stable clique ID) with a maximum-weight spanning tree, weight being
// separator size, ties broken by the lexicographically smaller (i, j) pair
// of clique IDs. It is Kruskal's algorithm with the sort order reversed:
// process the heaviest edges first instead of the lightest, using the same
// disjoint-set-with-path-compression-and-union-by-rank machinery.
//
// The result is an undirected core.Graph with one vertex per clique ID
// ("0", "1", …) and a separator map from each tree edge's ID to the sorted
// node-index intersection it carries.
func buildSpanningTree(cliques [][]int) (*core.Graph, map[string][]int, error) {
	// core.Graph carries no edge weights: separator weights only matter for
	// edge selection below, which is done on the cliquePair slice before an
	// edge is added. bfs.BFS then walks the plain tree directly for
	// collect/distribute ordering.
	tree := core.NewGraph(core.WithDirected(false))
	for i := range cliques {
		_ = tree.AddVertex(cliqueVertexID(i))
	}
	if len(cliques) <= 1 {
		return tree, map[string][]int{}, nil
	}

	pairs := make([]cliquePair, 0, len(cliques)*(len(cliques)-1)/2)
	for i := 0; i < len(cliques); i++ {
		for j := i + 1; j < len(cliques); j++ {
			sep := intersect(cliques[i], cliques[j])
			pairs = append(pairs, cliquePair{i: i, j: j, weight: len(sep), sep: sep})
		}
	}

	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].weight != pairs[b].weight {
			return pairs[a].weight > pairs[b].weight // descending weight
		}
		if pairs[a].i != pairs[b].i {
			return pairs[a].i < pairs[b].i
		}
		return pairs[a].j < pairs[b].j
	})

	parent := make([]int, len(cliques))
	rank := make([]int, len(cliques))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	separators := make(map[string][]int, len(cliques)-1)
	added := 0
	for _, p := range pairs {
		if find(p.i) == find(p.j) {
			continue
		}
		union(p.i, p.j)
		eid, err := tree.AddEdge(cliqueVertexID(p.i), cliqueVertexID(p.j))
		if err != nil {
			return nil, nil, err
		}
		separators[eid] = p.sep
		added++
		if added == len(cliques)-1 {
			break
		}
	}
	if added != len(cliques)-1 {
		return nil, nil, ErrDisconnectedCliques
	}

	return tree, separators, nil
}

func cliqueVertexID(id int) string { return strconv.Itoa(id) }
