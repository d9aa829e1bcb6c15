package recommend

import (
	"sort"

	"go.uber.org/zap"

	"github.com/bayeshint/bnrec/inference"
)

// rank applies filter, sorts by cmp, and truncates to maxLength.
func rank(recs []Recommendation, filter Filter, cmp Comparator, maxLength int) []Recommendation {
	kept := make([]Recommendation, 0, len(recs))
	for _, r := range recs {
		if filter == nil || filter(r) {
			kept = append(kept, r)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return cmp(kept[i], kept[j]) })
	if maxLength >= 0 && len(kept) > maxLength {
		kept = kept[:maxLength]
	}
	return kept
}

// beliefAt reads node's True-outcome-style single belief via its index
// within outcomes, logging and accounting for the Inconsistent case.
func (f *Facade) beliefAt(nodeIdx, outcomeIdx int) float64 {
	beliefs, inconsistent, err := f.engine.Beliefs(nodeIdx)
	if err != nil {
		return 0
	}
	if inconsistent {
		f.logger.Warn("inconsistent beliefs", zap.String("session_id", f.sessionID.String()), zap.Int("node", nodeIdx))
		return 0
	}
	return beliefs[outcomeIdx]
}

// RecommendedCalls returns one Recommendation per per-method node not
// currently pinned as evidence, with relevance equal to that node's belief
// of True (scenario S1, invariant #3).
func (f *Facade) RecommendedCalls(filter Filter, cmp Comparator, maxLength int) []Recommendation {
	evidence := f.engine.Evidence()
	trueIdx, _ := trueFalseIndices(f)

	recs := make([]Recommendation, 0, len(f.methods))
	for id, nd := range f.methods {
		if _, pinned := evidence[nd.Index()]; pinned {
			continue
		}
		p := f.beliefAt(nd.Index(), trueIdx)
		recs = append(recs, Recommendation{Value: id, Relevance: p})
	}
	return rank(recs, filter, cmp, maxLength)
}

// trueFalseIndices resolves the shared True/False outcome positions from
// an arbitrary per-method node; every per-method node uses the same
// {True, False} outcome space.
func trueFalseIndices(f *Facade) (trueIdx, falseIdx int) {
	for _, nd := range f.methods {
		t, errT := nd.OutcomeIndex(True)
		fa, errF := nd.OutcomeIndex(False)
		if errT == nil && errF == nil {
			return t, fa
		}
	}
	return 0, 1
}

// RecommendedDefinitions iterates the definition node's outcomes, skipping
// beliefs at or below 0.05 and the two sentinel labels (scenario S5,
// invariant #4).
func (f *Facade) RecommendedDefinitions(filter Filter, cmp Comparator, maxLength int) []Recommendation {
	const minBelief = 0.05
	outcomes := f.def.Outcomes()
	recs := make([]Recommendation, 0, len(outcomes))
	for idx, label := range outcomes {
		if label == sentinelNoneDefinition || label == sentinelUnknownMethod {
			continue
		}
		p := f.beliefAt(f.def.Index(), idx)
		if p <= minBelief {
			continue
		}
		recs = append(recs, Recommendation{Value: label, Relevance: p})
	}
	return rank(recs, filter, cmp, maxLength)
}

// RecommendedPatterns emits every outcome of the call-group node with its
// belief, without sentinel filtering.
func (f *Facade) RecommendedPatterns(filter Filter, cmp Comparator, maxLength int) []Recommendation {
	outcomes := f.callGroups.Outcomes()
	recs := make([]Recommendation, 0, len(outcomes))
	for idx, label := range outcomes {
		p := f.beliefAt(f.callGroups.Index(), idx)
		recs = append(recs, Recommendation{Value: label, Relevance: p})
	}
	return rank(recs, filter, cmp, maxLength)
}

// ObservedCalls returns the per-method nodes currently pinned True,
// excluding the "no-method" sentinel.
func (f *Facade) ObservedCalls() []string {
	evidence := f.engine.Evidence()
	trueIdx, _ := trueFalseIndices(f)

	out := make([]string, 0)
	for id, nd := range f.methods {
		if id == sentinelNoneDefinition {
			continue
		}
		if outIdx, ok := evidence[nd.Index()]; ok && outIdx == trueIdx {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// observedLabel looks up the current evidence for nd and, if present,
// returns the corresponding outcome label as Some.
func observedLabel(eng *inference.Engine, nd interface {
	Index() int
	Outcomes() []string
}) Maybe[string] {
	evidence := eng.Evidence()
	idx, ok := evidence[nd.Index()]
	if !ok {
		return None[string]()
	}
	outcomes := nd.Outcomes()
	if idx < 0 || idx >= len(outcomes) {
		return None[string]()
	}
	return Some(outcomes[idx])
}

// ObservedEnclosingMethod returns the context node's currently pinned
// label, if any.
func (f *Facade) ObservedEnclosingMethod() Maybe[string] { return observedLabel(f.engine, f.context) }

// ObservedKind returns the kind node's currently pinned label, if any.
func (f *Facade) ObservedKind() Maybe[string] { return observedLabel(f.engine, f.defKind) }

// ObservedDefinition returns the definition node's currently pinned label,
// if any.
func (f *Facade) ObservedDefinition() Maybe[string] { return observedLabel(f.engine, f.def) }
