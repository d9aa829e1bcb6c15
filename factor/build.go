package factor

import (
	"github.com/bayeshint/bnrec/core"
	"github.com/bayeshint/bnrec/dfs"
)

// AddNode creates and registers a new node with the given identifier.
// The identifier must be unique within the network.
func (n *Network) AddNode(id string) (*Node, error) {
	if _, exists := n.byID[id]; exists {
		return nil, ErrDuplicateNode
	}
	nd := &Node{
		id:         id,
		index:      len(n.nodes),
		outcomeIdx: make(map[string]int),
		owner:      n,
	}
	n.nodes = append(n.nodes, nd)
	n.byID[id] = nd
	n.validated = false

	return nd, nil
}

// AddOutcome appends label to the node's ordered outcome space. Labels must
// be unique per node; order of insertion is preserved and is significant
// (the first outcome is conventionally a dummy sentinel).
func (nd *Node) AddOutcome(label string) error {
	if _, exists := nd.outcomeIdx[label]; exists {
		return ErrDuplicateOutcome
	}
	nd.outcomeIdx[label] = len(nd.outcomes)
	nd.outcomes = append(nd.outcomes, label)

	return nil
}

// Outcomes returns a defensive copy of the node's ordered outcome labels.
func (nd *Node) Outcomes() []string {
	out := make([]string, len(nd.outcomes))
	copy(out, nd.outcomes)
	return out
}

// OutcomeCount returns the number of outcomes declared so far.
func (nd *Node) OutcomeCount() int { return len(nd.outcomes) }

// OutcomeIndex returns the position of label within the node's outcome
// space, or ErrUnknownOutcome if label was never added via AddOutcome.
func (nd *Node) OutcomeIndex(label string) (int, error) {
	idx, ok := nd.outcomeIdx[label]
	if !ok {
		return 0, ErrUnknownOutcome
	}
	return idx, nil
}

// Parents returns a defensive copy of the node's ordered parent list, fixed
// by SetParents.
func (nd *Node) Parents() []*Node {
	out := make([]*Node, len(nd.parents))
	copy(out, nd.parents)
	return out
}

// SetParents fixes the node's parent order, and therefore its CPT strides.
// It must be called exactly once, before SetProbabilities, and every parent
// must belong to the same Network. An empty slice is valid (a root node).
func (nd *Node) SetParents(parents []*Node) error {
	if nd.parentsSet {
		return ErrParentsAlreadySet
	}
	for _, p := range parents {
		if p.owner != nd.owner {
			return ErrForeignParent
		}
	}
	nd.parents = append([]*Node(nil), parents...)
	nd.parentsSet = true

	return nil
}

// cptLength returns the expected flat CPT length: the node's own outcome
// count times the product of its parents' outcome counts.
func (nd *Node) cptLength() int {
	length := len(nd.outcomes)
	for _, p := range nd.parents {
		length *= len(p.outcomes)
	}
	return length
}

// SetProbabilities validates and stores the node's flat CPT. The array must
// obey the stride convention: for a fixed parent-outcome assignment, the
// |outcomes| values for this node are contiguous, and the node's own index
// varies fastest, followed by each parent in declared order.
//
// Each contiguous row is renormalized to sum 1. A row whose sum is
// vanishingly small (at or near zero) is stored as-is rather than divided
// by near-zero: a CPT that is deliberately all-zero for some parent
// assignment is a legal, if degenerate, model — inference surfaces it as
// contradictory evidence rather than construction rejecting it outright.
func (nd *Node) SetProbabilities(probs []float64) error {
	if !nd.parentsSet {
		return ErrParentsNotSet
	}
	if len(nd.outcomes) < 2 {
		return ErrTooFewOutcomes
	}
	expected := nd.cptLength()
	if len(probs) != expected {
		return ErrBadCPTLength
	}

	row := len(nd.outcomes)
	out := make([]float64, len(probs))
	for start := 0; start < len(probs); start += row {
		sum := 0.0
		for i := 0; i < row; i++ {
			v := probs[start+i]
			if v < 0 {
				return ErrBadCPTLength
			}
			sum += v
		}
		for i := 0; i < row; i++ {
			if sum > rowEpsilon {
				out[start+i] = probs[start+i] / sum
			} else {
				out[start+i] = probs[start+i]
			}
		}
	}

	nd.probs = out
	nd.stride = row

	return nil
}

// rowEpsilon is the floor below which a CPT row's sum is treated as zero
// (left unnormalized) rather than divided into.
const rowEpsilon = 1e-9

// CPT returns a read-only (defensively copied) view of the node's flat,
// row-normalized probability table.
func (nd *Node) CPT() []float64 {
	out := make([]float64, len(nd.probs))
	copy(out, nd.probs)
	return out
}

// indexOf computes the flat CPT offset for the node fixed at selfIdx with
// parents fixed at the outcome indices in parentIdxs (same order as
// Parents()). It is the single place that implements the stride convention
// documented on SetProbabilities.
func (nd *Node) indexOf(selfIdx int, parentIdxs []int) int {
	idx := selfIdx
	stride := len(nd.outcomes)
	for i, p := range nd.parents {
		idx += stride * parentIdxs[i]
		stride *= len(p.outcomes)
	}
	return idx
}

// ProbabilityAt returns P(self=selfIdx | parents=parentIdxs) from the
// node's CPT, using the stride convention.
func (nd *Node) ProbabilityAt(selfIdx int, parentIdxs []int) float64 {
	return nd.probs[nd.indexOf(selfIdx, parentIdxs)]
}

// Validate checks DAG-ness of the whole network: every parent reference
// resolves within the network and the parent graph has no cycle. It builds
// a transient directed core.Graph (one vertex per node ID, one edge per
// parent->child relationship) and delegates cycle detection to
// dfs.TopologicalSort.
func (n *Network) Validate() error {
	g := core.NewGraph(core.WithDirected(true))
	for _, nd := range n.nodes {
		if err := g.AddVertex(nd.id); err != nil {
			return ErrCycle
		}
	}
	for _, nd := range n.nodes {
		if len(nd.outcomes) < 2 {
			return ErrTooFewOutcomes
		}
		for _, p := range nd.parents {
			if _, err := g.AddEdge(p.id, nd.id); err != nil {
				return ErrCycle
			}
		}
	}
	if _, err := dfs.TopologicalSort(g); err != nil {
		return ErrCycle
	}

	n.validated = true

	return nil
}
