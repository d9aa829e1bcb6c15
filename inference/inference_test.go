package inference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayeshint/bnrec/factor"
	"github.com/bayeshint/bnrec/inference"
	"github.com/bayeshint/bnrec/jtree"
)

// buildDiamond mirrors jtree_test's network: A -> B, A -> C, B -> D, C -> D.
func buildDiamond(t *testing.T) (*factor.Network, map[string]*factor.Node) {
	t.Helper()
	n := factor.NewNetwork()
	nodes := map[string]*factor.Node{}

	mk := func(id string) *factor.Node {
		nd, err := n.AddNode(id)
		require.NoError(t, err)
		require.NoError(t, nd.AddOutcome("0"))
		require.NoError(t, nd.AddOutcome("1"))
		nodes[id] = nd
		return nd
	}

	a := mk("A")
	b := mk("B")
	c := mk("C")
	d := mk("D")

	require.NoError(t, a.SetParents(nil))
	require.NoError(t, a.SetProbabilities([]float64{0.5, 0.5}))

	require.NoError(t, b.SetParents([]*factor.Node{a}))
	require.NoError(t, b.SetProbabilities([]float64{0.9, 0.1, 0.2, 0.8}))

	require.NoError(t, c.SetParents([]*factor.Node{a}))
	require.NoError(t, c.SetProbabilities([]float64{0.7, 0.3, 0.4, 0.6}))

	require.NoError(t, d.SetParents([]*factor.Node{b, c}))
	require.NoError(t, d.SetProbabilities([]float64{0.1, 0.9, 0.2, 0.8, 0.3, 0.7, 0.4, 0.6}))

	return n, nodes
}

func newEngine(t *testing.T) (*inference.Engine, *factor.Network, map[string]*factor.Node) {
	t.Helper()
	n, nodes := buildDiamond(t)
	tr, err := jtree.Build(n)
	require.NoError(t, err)
	return inference.New(n, tr), n, nodes
}

func sumBeliefs(t *testing.T, beliefs []float64) float64 {
	t.Helper()
	total := 0.0
	for _, v := range beliefs {
		total += v
	}
	return total
}

func TestBeliefs_PriorMatchesUnconditionedCPT(t *testing.T) {
	eng, _, nodes := newEngine(t)
	beliefs, inconsistent, err := eng.Beliefs(nodes["A"].Index())
	require.NoError(t, err)
	assert.False(t, inconsistent)
	assert.InDelta(t, 0.5, beliefs[0], 1e-9)
	assert.InDelta(t, 0.5, beliefs[1], 1e-9)
}

func TestBeliefs_SumToOne(t *testing.T) {
	eng, n, _ := newEngine(t)
	for idx := 0; idx < n.NodeCount(); idx++ {
		beliefs, inconsistent, err := eng.Beliefs(idx)
		require.NoError(t, err)
		if inconsistent {
			continue
		}
		assert.InDelta(t, 1.0, sumBeliefs(t, beliefs), 1e-9)
	}
}

func TestBeliefs_EvidencePinsOutcome(t *testing.T) {
	eng, _, nodes := newEngine(t)
	require.NoError(t, eng.AddEvidence(nodes["A"].Index(), "0"))
	beliefs, inconsistent, err := eng.Beliefs(nodes["A"].Index())
	require.NoError(t, err)
	assert.False(t, inconsistent)
	assert.InDelta(t, 1.0, beliefs[0], 1e-9)
	assert.InDelta(t, 0.0, beliefs[1], 1e-9)
}

func TestBeliefs_OrderIndependence(t *testing.T) {
	eng1, _, nodes1 := newEngine(t)
	require.NoError(t, eng1.AddEvidence(nodes1["B"].Index(), "1"))
	require.NoError(t, eng1.AddEvidence(nodes1["C"].Index(), "0"))
	beliefs1, _, err := eng1.Beliefs(nodes1["D"].Index())
	require.NoError(t, err)

	eng2, _, nodes2 := newEngine(t)
	require.NoError(t, eng2.AddEvidence(nodes2["C"].Index(), "0"))
	require.NoError(t, eng2.AddEvidence(nodes2["B"].Index(), "1"))
	beliefs2, _, err := eng2.Beliefs(nodes2["D"].Index())
	require.NoError(t, err)

	assert.InDeltaSlice(t, beliefs1, beliefs2, 1e-9)
}

func TestBeliefs_ResetRestoresPrior(t *testing.T) {
	eng, _, nodes := newEngine(t)
	require.NoError(t, eng.AddEvidence(nodes["A"].Index(), "0"))
	_, _, err := eng.Beliefs(nodes["A"].Index())
	require.NoError(t, err)

	eng.Reset()
	beliefs, inconsistent, err := eng.Beliefs(nodes["A"].Index())
	require.NoError(t, err)
	assert.False(t, inconsistent)
	assert.InDelta(t, 0.5, beliefs[0], 1e-9)
}

func TestBeliefs_ContradictoryEvidence(t *testing.T) {
	n := factor.NewNetwork()
	nd, err := n.AddNode("solo")
	require.NoError(t, err)
	require.NoError(t, nd.AddOutcome("x"))
	require.NoError(t, nd.AddOutcome("y"))
	require.NoError(t, nd.SetParents(nil))
	// An all-zero CPT row: a legal, degenerate model.
	require.NoError(t, nd.SetProbabilities([]float64{0, 0}))

	tr, err := jtree.Build(n)
	require.NoError(t, err)
	eng := inference.New(n, tr)

	require.NoError(t, eng.AddEvidence(nd.Index(), "x"))
	beliefs, inconsistent, err := eng.Beliefs(nd.Index())
	require.NoError(t, err)
	assert.True(t, inconsistent)
	for _, v := range beliefs {
		assert.Equal(t, 0.0, v)
	}
}

func TestEngine_UnknownOutcome(t *testing.T) {
	eng, _, nodes := newEngine(t)
	err := eng.AddEvidence(nodes["A"].Index(), "does-not-exist")
	assert.ErrorIs(t, err, inference.ErrUnknownOutcome)
}
