package jtree

import (
	"fmt"
	"sort"

	"github.com/bayeshint/bnrec/bfs"
	"github.com/bayeshint/bnrec/core"
	"github.com/bayeshint/bnrec/factor"
)

// indicesOf returns the construction-order indices of a node slice.
func indicesOf(nodes []*factor.Node) []int {
	out := make([]int, len(nodes))
	for i, nd := range nodes {
		out[i] = nd.Index()
	}
	return out
}

// JunctionTree is the one-shot, immutable result of compiling a
// factor.Network: its maximal cliques, the spanning tree connecting them,
// each tree edge's separator, a home clique for every original node, and a
// fixed collect/distribute traversal order for message passing.
type JunctionTree struct {
	cliques    [][]int // cliqueID -> sorted node indices
	tree       *core.Graph
	separators map[string][]int   // edge ID -> sorted separator node indices
	pairSep    map[[2]int][]int   // (min(a,b), max(a,b)) -> separator
	home       []int              // node index -> cliqueID
	order      []string           // clique IDs, BFS (= distribute) order
	parent     map[string]string  // clique ID -> parent clique ID (root absent)
	root       int
}

// Build compiles a junction tree for network. network need not have been
// validated already; Build validates it itself and returns ErrCyclicNetwork
// wrapping the underlying factor error if validation fails.
func Build(network *factor.Network) (*JunctionTree, error) {
	nodes := network.Nodes()
	if len(nodes) == 0 {
		return nil, ErrEmptyNetwork
	}
	if err := network.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCyclicNetwork, err)
	}

	moral := moralize(network)
	candidates := triangulate(moral)
	cliques := maximalCliques(candidates)

	tree, separators, err := buildSpanningTree(cliques)
	if err != nil {
		return nil, err
	}

	// Each node's home clique must contain the node AND all of its parents,
	// since initialization multiplies the node's CPT (indexed by self and
	// parent outcomes together) into that single clique's potential.
	// Moralization's "marry the parents" edges guarantee this family is a
	// clique in the triangulated graph, so some maximal clique is always a
	// superset; pick the lowest-ID one for determinism.
	home := make([]int, len(nodes))
	for i := range home {
		home[i] = -1
	}
	for _, nd := range nodes {
		family := append([]int{nd.Index()}, indicesOf(nd.Parents())...)
		sort.Ints(family)
		for cid, clique := range cliques {
			if isSubset(family, clique) {
				home[nd.Index()] = cid
				break
			}
		}
	}
	for nodeIdx, cid := range home {
		if cid == -1 {
			return nil, fmt.Errorf("%w: node %d's family has no containing clique", ErrCyclicNetwork, nodeIdx)
		}
	}

	pairSep := make(map[[2]int][]int, len(separators))
	for _, e := range tree.Edges() {
		sep := separators[e.ID]
		a, b := mustAtoi(e.From), mustAtoi(e.To)
		pairSep[pairKey(a, b)] = sep
	}

	root := "0"
	res, err := bfs.BFS(tree, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDisconnectedCliques, err)
	}

	return &JunctionTree{
		cliques:    cliques,
		tree:       tree,
		separators: separators,
		pairSep:    pairSep,
		home:       home,
		order:      res.Order,
		parent:     res.Parent,
		root:       0,
	}, nil
}

func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// CliqueCount returns the number of maximal cliques in the tree.
func (jt *JunctionTree) CliqueCount() int { return len(jt.cliques) }

// CliqueNodes returns a defensive copy of the sorted node indices belonging
// to clique id.
func (jt *JunctionTree) CliqueNodes(id int) []int {
	out := make([]int, len(jt.cliques[id]))
	copy(out, jt.cliques[id])
	return out
}

// Cliques returns a defensive copy of every clique's node-index list,
// indexed by clique ID. Exposed as a read-only diagnostic so determinism
// (identical networks produce identical clique sets) is mechanically
// testable from outside the package.
func (jt *JunctionTree) Cliques() [][]int {
	out := make([][]int, len(jt.cliques))
	for i, c := range jt.cliques {
		cc := make([]int, len(c))
		copy(cc, c)
		out[i] = cc
	}
	return out
}

// Edges returns the spanning tree's edges (clique ID pairs encoded as
// vertex IDs), sorted by edge ID, for external determinism checks.
func (jt *JunctionTree) Edges() []*core.Edge { return jt.tree.Edges() }

// Root returns the clique ID used as the root of the collect/distribute
// traversal.
func (jt *JunctionTree) Root() int { return jt.root }

// DistributeOrder returns clique IDs in an order where every clique
// precedes its children (the order in which the distribute phase of
// message passing must run).
func (jt *JunctionTree) DistributeOrder() []int {
	return stringsToCliqueIDs(jt.order)
}

// CollectOrder returns clique IDs in an order where every clique follows
// its children (the order the collect phase must run): the reverse of
// DistributeOrder.
func (jt *JunctionTree) CollectOrder() []int {
	order := jt.DistributeOrder()
	out := make([]int, len(order))
	for i, id := range order {
		out[len(order)-1-i] = id
	}
	return out
}

// ParentOf returns the parent clique ID of id in the rooted spanning tree,
// and false if id is the root.
func (jt *JunctionTree) ParentOf(id int) (int, bool) {
	p, ok := jt.parent[cliqueVertexID(id)]
	if !ok {
		return 0, false
	}
	return mustAtoi(p), true
}

// SeparatorBetween returns the sorted node-index separator carried by the
// tree edge between cliques a and b.
func (jt *JunctionTree) SeparatorBetween(a, b int) ([]int, error) {
	sep, ok := jt.pairSep[pairKey(a, b)]
	if !ok {
		return nil, ErrNodeNotInTree
	}
	out := make([]int, len(sep))
	copy(out, sep)
	return out, nil
}

// HomeClique returns the clique ID chosen to host nodeIdx's CPT during
// inference initialization: the lowest-ID maximal clique containing it and
// all of its parents.
func (jt *JunctionTree) HomeClique(nodeIdx int) (int, error) {
	if nodeIdx < 0 || nodeIdx >= len(jt.home) {
		return 0, ErrNodeNotInTree
	}
	return jt.home[nodeIdx], nil
}

func stringsToCliqueIDs(ids []string) []int {
	out := make([]int, len(ids))
	for i, s := range ids {
		out[i] = mustAtoi(s)
	}
	return out
}
