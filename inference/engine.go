package inference

import (
	"strconv"

	"github.com/bayeshint/bnrec/factor"
	"github.com/bayeshint/bnrec/jtree"
)

// atoiMust parses a clique vertex ID minted by package jtree; a parse
// failure indicates an internal inconsistency, not bad caller input.
func atoiMust(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic("inference: non-numeric clique id: " + s)
	}
	return n
}

// beliefEpsilon is the numerical-policy tolerance from the propagation
// design: a marginal is only renormalized if its mass exceeds this; below
// it, the query is treated as contradictory and zeros are returned instead
// of dividing by a near-zero sum.
const beliefEpsilon = 1e-9

// Engine holds the live inference state for one factor.Network: its
// junction tree's clique potentials, the current evidence set, and a dirty
// flag that defers propagation until the next query.
//
// An Engine is not safe for concurrent use; pair it with exactly one
// recommend.Facade session the way the facade's Clone contract intends.
type Engine struct {
	network *factor.Network
	tree    *jtree.JunctionTree
	cardOf  func(int) int

	base []*potential // cliqueID -> potential after CPT multiplication, before evidence

	evidence map[int]int
	dirty    bool
	current  []*potential // last propagated potentials; valid iff !dirty
}

// New builds an Engine over network's compiled junction tree: every clique
// potential starts at 1 and every node's CPT is multiplied into its home
// clique.
func New(network *factor.Network, tree *jtree.JunctionTree) *Engine {
	nodes := network.Nodes()
	cardOf := func(idx int) int { return nodes[idx].OutcomeCount() }

	base := make([]*potential, tree.CliqueCount())
	for cid := 0; cid < tree.CliqueCount(); cid++ {
		base[cid] = newOnesPotential(tree.CliqueNodes(cid), cardOf)
	}
	for _, nd := range nodes {
		home, _ := tree.HomeClique(nd.Index())
		base[home].multiplyCPT(nd)
	}

	return &Engine{
		network:  network,
		tree:     tree,
		cardOf:   cardOf,
		base:     base,
		evidence: make(map[int]int),
		dirty:    true,
	}
}

// AddEvidence fixes node nodeIdx to the outcome named label, looking the
// label up through the network's node. It marks the engine dirty so the
// next query re-propagates.
func (e *Engine) AddEvidence(nodeIdx int, label string) error {
	nd, err := e.nodeAt(nodeIdx)
	if err != nil {
		return err
	}
	outIdx, err := nd.OutcomeIndex(label)
	if err != nil {
		return ErrUnknownOutcome
	}
	e.evidence[nodeIdx] = outIdx
	e.dirty = true

	return nil
}

// SetEvidence atomically replaces the whole evidence map with a copy of m.
func (e *Engine) SetEvidence(m map[int]int) {
	cp := make(map[int]int, len(m))
	for k, v := range m {
		cp[k] = v
	}
	e.evidence = cp
	e.dirty = true
}

// Evidence returns a read-only copy of the current evidence map.
func (e *Engine) Evidence() map[int]int {
	cp := make(map[int]int, len(e.evidence))
	for k, v := range e.evidence {
		cp[k] = v
	}
	return cp
}

// Reset clears all evidence without touching the junction tree or base
// potentials.
func (e *Engine) Reset() {
	e.evidence = make(map[int]int)
	e.dirty = true
}

// nodeAt resolves a node index against the network, returning ErrUnknownNode
// if out of range.
func (e *Engine) nodeAt(idx int) (*factor.Node, error) {
	nodes := e.network.Nodes()
	if idx < 0 || idx >= len(nodes) {
		return nil, ErrUnknownNode
	}
	return nodes[idx], nil
}

// Beliefs marginalizes node nodeIdx's home clique down to just that node,
// honoring current evidence, and returns its normalized belief vector. The
// second return is true iff propagation produced an all-zero potential
// (contradictory evidence) for this node, in which case the vector itself
// is all zero.
func (e *Engine) Beliefs(nodeIdx int) ([]float64, bool, error) {
	if _, err := e.nodeAt(nodeIdx); err != nil {
		return nil, false, err
	}
	e.propagate()

	home, err := e.tree.HomeClique(nodeIdx)
	if err != nil {
		return nil, false, ErrUnknownNode
	}
	marg := e.current[home].marginalizeToSingle(nodeIdx)
	total := marg.sum()
	out := make([]float64, len(marg.data))
	if total <= beliefEpsilon {
		return out, true, nil
	}
	for i, v := range marg.data {
		out[i] = v / total
	}

	return out, false, nil
}

// propagate runs two-phase collect/distribute message passing if the
// engine is dirty; it is a no-op otherwise.
func (e *Engine) propagate() {
	if !e.dirty {
		return
	}

	potentials := make([]*potential, len(e.base))
	for i, p := range e.base {
		cp := p.clone()
		cp.applyEvidence(e.evidence)
		potentials[i] = cp
	}

	sep := make(map[[2]int]*potential, e.tree.CliqueCount())
	for _, edge := range e.tree.Edges() {
		a, b := atoiMust(edge.From), atoiMust(edge.To)
		nodes, _ := e.tree.SeparatorBetween(a, b)
		sep[sepKey(a, b)] = newOnesPotential(nodes, e.cardOf)
	}

	for _, cid := range e.tree.CollectOrder() {
		parent, ok := e.tree.ParentOf(cid)
		if !ok {
			continue
		}
		e.passMessage(potentials, sep, cid, parent)
	}
	for _, cid := range e.tree.DistributeOrder() {
		parent, ok := e.tree.ParentOf(cid)
		if !ok {
			continue
		}
		e.passMessage(potentials, sep, parent, cid)
	}

	e.current = potentials
	e.dirty = false
}

// passMessage sends a message from 'from' to 'to' over their shared
// separator: marginalize from's potential down to the separator, divide by
// the separator's previously stored content, multiply that ratio into to's
// potential, then update the stored separator content.
func (e *Engine) passMessage(potentials []*potential, sepPotentials map[[2]int]*potential, from, to int) {
	nodes, err := e.tree.SeparatorBetween(from, to)
	if err != nil {
		return
	}
	key := sepKey(from, to)
	newMsg := potentials[from].marginalizeTo(nodes)
	ratio := newMsg.safeDivideBy(sepPotentials[key])
	potentials[to].multiplyBroadcast(ratio)
	sepPotentials[key] = newMsg
}

func sepKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
