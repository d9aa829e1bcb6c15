package recommend

import (
	"fmt"

	"github.com/bayeshint/bnrec/bnerr"
)

// ErrMissingSingleton is raised at construction when one of the four
// required semantic nodes (context, call-group, definition, kind) is absent
// from the decoded network.
var ErrMissingSingleton = fmt.Errorf("recommend: missing required singleton node: %w", bnerr.InvalidModel)

// ErrSingletonTooFewOutcomes is raised at construction when a required
// singleton node has fewer than two outcomes.
var ErrSingletonTooFewOutcomes = fmt.Errorf("recommend: singleton node has fewer than 2 outcomes: %w", bnerr.InvalidModel)

// ErrUnknownMethod marks a lookup against the per-method node index that
// finds no match. SetObservedCall reports such a miss by returning false;
// no function in this package returns this error.
var ErrUnknownMethod = fmt.Errorf("recommend: method not found: %w", bnerr.NotFound)
