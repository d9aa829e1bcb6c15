// Package bnerr defines the shared error taxonomy from the recommender spec:
// InvalidModel, UnknownOutcome, Inconsistent, and NotFound. Every package
// wraps one of these markers around its own sentinel so callers can branch
// with errors.Is(err, bnerr.InvalidModel) regardless of which layer raised it.
package bnerr

import "errors"

var (
	// InvalidModel marks construction-time failures: missing singleton
	// nodes, too few outcomes, malformed CPTs, cycles, duplicate labels.
	// Fatal to whatever is being constructed; callers must discard it.
	InvalidModel = errors.New("bnrec: invalid model")

	// UnknownOutcome marks an evidence label absent from a node's outcomes.
	UnknownOutcome = errors.New("bnrec: unknown outcome")

	// Inconsistent marks a junction-tree propagation that produced an
	// all-zero potential (contradictory evidence).
	Inconsistent = errors.New("bnrec: inconsistent evidence")

	// NotFound marks a failed lookup (e.g. a per-method node that does not
	// exist in the network).
	NotFound = errors.New("bnrec: not found")
)
