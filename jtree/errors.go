package jtree

import (
	"fmt"

	"github.com/bayeshint/bnrec/bnerr"
)

// ErrEmptyNetwork is raised by Build when the network has no nodes.
var ErrEmptyNetwork = fmt.Errorf("jtree: network has no nodes: %w", bnerr.InvalidModel)

// ErrCyclicNetwork is raised by Build when the underlying network fails its
// own DAG validation.
var ErrCyclicNetwork = fmt.Errorf("jtree: network is not a DAG: %w", bnerr.InvalidModel)

// ErrDisconnectedCliques is raised if the maximal-clique graph turns out to
// be disconnected, which would mean moralization or triangulation produced
// an internally inconsistent candidate set. This should not happen for any
// network that passed factor.Network.Validate.
var ErrDisconnectedCliques = fmt.Errorf("jtree: clique graph is disconnected: %w", bnerr.InvalidModel)

// ErrNodeNotInTree is raised by HomeClique when asked about a node index
// the tree never saw.
var ErrNodeNotInTree = fmt.Errorf("jtree: node has no home clique: %w", bnerr.NotFound)
