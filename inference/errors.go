package inference

import (
	"fmt"

	"github.com/bayeshint/bnrec/bnerr"
)

// ErrUnknownOutcome is raised by AddEvidence when the outcome label is
// absent from the node's outcome space.
var ErrUnknownOutcome = fmt.Errorf("inference: unknown outcome label: %w", bnerr.UnknownOutcome)

// ErrUnknownNode is raised by AddEvidence/Beliefs when the node index is
// out of range for the engine's network.
var ErrUnknownNode = fmt.Errorf("inference: unknown node index: %w", bnerr.NotFound)

// ErrInconsistent names the condition Beliefs reports through its second
// return (a flag, not an error) when propagation produced an all-zero
// potential for the queried node. Beliefs itself never returns this as an
// error value, but callers that want to surface it through errors.Is can
// wrap it with this sentinel.
var ErrInconsistent = fmt.Errorf("inference: contradictory evidence: %w", bnerr.Inconsistent)
