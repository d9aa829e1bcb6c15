package factor

import (
	"errors"
	"fmt"

	"github.com/bayeshint/bnrec/bnerr"
)

// ErrDuplicateNode is raised when AddNode is called twice with the same ID.
var ErrDuplicateNode = fmt.Errorf("factor: duplicate node id: %w", bnerr.InvalidModel)

// ErrDuplicateOutcome is raised when AddOutcome is called twice with the
// same label on one node.
var ErrDuplicateOutcome = fmt.Errorf("factor: duplicate outcome label: %w", bnerr.InvalidModel)

// ErrTooFewOutcomes is raised when SetProbabilities (or Validate) observes a
// node with fewer than two outcomes.
var ErrTooFewOutcomes = fmt.Errorf("factor: node needs at least 2 outcomes: %w", bnerr.InvalidModel)

// ErrParentsAlreadySet is raised on a second call to SetParents.
var ErrParentsAlreadySet = fmt.Errorf("factor: parents already set: %w", bnerr.InvalidModel)

// ErrParentsNotSet is raised when SetProbabilities is called before
// SetParents.
var ErrParentsNotSet = fmt.Errorf("factor: SetParents must precede SetProbabilities: %w", bnerr.InvalidModel)

// ErrForeignParent is raised when SetParents references a *Node that does
// not belong to the same Network.
var ErrForeignParent = fmt.Errorf("factor: parent node belongs to another network: %w", bnerr.InvalidModel)

// ErrBadCPTLength is raised when the supplied probability array's length
// does not equal the product of parent and self cardinalities, and also by
// SetProbabilities when any entry is negative.
var ErrBadCPTLength = fmt.Errorf("factor: CPT length mismatch: %w", bnerr.InvalidModel)

// ErrCycle is raised by Validate when the network's parent edges contain a
// cycle.
var ErrCycle = fmt.Errorf("factor: cyclic parent graph: %w", bnerr.InvalidModel)

// ErrUnknownOutcome is raised by OutcomeIndex when the label is absent.
var ErrUnknownOutcome = fmt.Errorf("factor: unknown outcome label: %w", bnerr.UnknownOutcome)

// ErrNodeNotFound is raised by Network.Node when the id is absent.
var ErrNodeNotFound = fmt.Errorf("factor: node not found: %w", bnerr.NotFound)

// IsInvalidModel reports whether err ultimately wraps bnerr.InvalidModel.
func IsInvalidModel(err error) bool { return errors.Is(err, bnerr.InvalidModel) }
