package jtree

import (
	"sort"
	"strconv"

	"github.com/bayeshint/bnrec/core"
)

// triangulate destructively eliminates every vertex of the moral graph g
// (an undirected core.Graph built by moralize) using the min-fill
// heuristic, breaking ties by lower node index for determinism. For each
// eliminated vertex it fills in any missing edges among its neighbors and
// records neighbors ∪ {vertex} as a candidate clique, in elimination order.
//
// g is mutated in place and is unusable by the caller afterward; callers
// that still need the moral graph's topology must keep their own copy
// before calling triangulate.
func triangulate(g *core.Graph) [][]int {
	var candidates [][]int

	for g.VertexCount() > 0 {
		v, neighbors := pickMinFillVertex(g)

		// Fill in: connect every pair of neighbors not already adjacent.
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				ui, uj := nodeVertexID(neighbors[i]), nodeVertexID(neighbors[j])
				if !g.HasEdge(ui, uj) {
					_, _ = g.AddEdge(ui, uj)
				}
			}
		}

		clique := append(append([]int(nil), neighbors...), v)
		sort.Ints(clique)
		candidates = append(candidates, clique)

		_ = g.RemoveVertex(nodeVertexID(v))
	}

	return candidates
}

// pickMinFillVertex scans every remaining vertex, computes the number of
// edges that would need to be added to turn its neighborhood into a clique
// (its "fill count"), and returns the vertex with the smallest fill count,
// breaking ties by lower integer node index. It also returns that vertex's
// current neighbor set as sorted integer indices.
func pickMinFillVertex(g *core.Graph) (int, []int) {
	ids := g.Vertices() // lexicographically sorted strings; order here is irrelevant to the result
	best := -1
	bestFill := -1
	var bestNeighbors []int

	for _, id := range ids {
		v := mustAtoi(id)
		neighbors := neighborIndices(g, id)
		fill := 0
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				if !g.HasEdge(nodeVertexID(neighbors[i]), nodeVertexID(neighbors[j])) {
					fill++
				}
			}
		}
		if bestFill == -1 || fill < bestFill || (fill == bestFill && v < best) {
			best = v
			bestFill = fill
			bestNeighbors = neighbors
		}
	}

	return best, bestNeighbors
}

// neighborIndices returns id's neighbor vertex IDs as sorted integer node
// indices.
func neighborIndices(g *core.Graph, id string) []int {
	raw, _ := g.NeighborIDs(id)
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		out = append(out, mustAtoi(s))
	}
	sort.Ints(out)

	return out
}

// mustAtoi parses a vertex ID produced by nodeVertexID. Every vertex in
// graphs built by this package is minted that way, so a parse failure would
// indicate an internal bug, not bad input.
func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic("jtree: non-numeric vertex id: " + s)
	}
	return n
}
