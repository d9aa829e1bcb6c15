// Package dfs computes a topological ordering of a directed graph's
// vertices, the mechanism factor.Network.Validate uses to reject cyclic
// networks.
package dfs

import (
	"fmt"

	"github.com/bayeshint/bnrec/core"
)

// topoSorter holds the state of one topological-sort walk.
type topoSorter struct {
	graph *core.Graph
	state map[string]int // White/Gray/Black per vertex
	order []string       // post-order sequence, reversed at the end
}

// TopologicalSort computes a topological ordering of every vertex in g: for
// every directed edge u→v, u precedes v in the result. Returns
// ErrGraphNil for a nil graph, an error if g is not directed, and
// ErrCycleDetected if g contains a cycle.
func TopologicalSort(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("dfs: TopologicalSort requires directed graph")
	}

	verts := g.Vertices()
	s := &topoSorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if s.state[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit runs DFS from id, coloring vertices White/Gray/Black and recording
// finish order; a Gray revisit is a back-edge, i.e. a cycle.
func (s *topoSorter) visit(id string) error {
	if s.state[id] == Gray {
		return ErrCycleDetected
	}
	if s.state[id] == Black {
		return nil
	}
	s.state[id] = Gray

	neighbors, err := s.graph.Neighbors(id)
	if err != nil {
		return err
	}
	for _, e := range neighbors {
		if e.From != id {
			continue
		}
		if err := s.visit(e.To); err != nil {
			return err
		}
	}

	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
