package modelfixture_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayeshint/bnrec/internal/modelfixture"
)

const twoNodeFixture = `{
  "nodes": [
    {"id": "A", "outcomes": ["a0", "a1"], "parents": [], "probabilities": [0.5, 0.5]},
    {"id": "B", "outcomes": ["b0", "b1"], "parents": ["A"], "probabilities": [0.9, 0.1, 0.2, 0.8]}
  ]
}`

func TestDecode_BuildsValidatedNetwork(t *testing.T) {
	n, err := modelfixture.Decode(strings.NewReader(twoNodeFixture))
	require.NoError(t, err)
	assert.Equal(t, 2, n.NodeCount())

	b, err := n.Node("B")
	require.NoError(t, err)
	assert.Len(t, b.Parents(), 1)
	assert.Equal(t, "A", b.Parents()[0].ID())
}

func TestDecode_UndeclaredParentRejected(t *testing.T) {
	const bad = `{"nodes": [{"id": "A", "outcomes": ["x", "y"], "parents": ["ghost"], "probabilities": [0.5, 0.5]}]}`
	_, err := modelfixture.Decode(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := modelfixture.Decode(strings.NewReader("not json"))
	assert.Error(t, err)
}
