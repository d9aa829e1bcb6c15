package recommend

import (
	"go.uber.org/zap"

	"github.com/bayeshint/bnrec/factor"
)

// pin sets evidence for nd to label, logging at Debug. It assumes label has
// already been validated against nd's outcome space by the caller.
func (f *Facade) pin(nd *factor.Node, label string) {
	_ = f.engine.AddEvidence(nd.Index(), label)
	f.logger.Debug("observation pinned",
		zap.String("session_id", f.sessionID.String()),
		zap.String("node", nd.ID()),
		zap.String("label", label),
	)
}

// SetObservedEnclosingMethod pins the context node to method, substituting
// the "unknown method" sentinel when method is absent from the context
// node's outcomes. It reports whether the resulting label exists on the
// context node.
func (f *Facade) SetObservedEnclosingMethod(method string) bool {
	label := method
	if _, err := f.context.OutcomeIndex(label); err != nil {
		label = sentinelUnknownMethod
		if _, err := f.context.OutcomeIndex(label); err != nil {
			return false
		}
	}
	f.pin(f.context, label)
	return true
}

// SetObservedKind pins the kind node to kind, substituting KindUnknown when
// kind is absent from the kind node's closed outcome set.
func (f *Facade) SetObservedKind(kind string) bool {
	label := kind
	if _, err := f.defKind.OutcomeIndex(label); err != nil {
		label = KindUnknown
		if _, err := f.defKind.OutcomeIndex(label); err != nil {
			return false
		}
	}
	f.pin(f.defKind, label)
	return true
}

// SetObservedDefinition pins the definition node to method, substituting
// the "unknown method" sentinel when method is absent from its outcomes.
func (f *Facade) SetObservedDefinition(method string) bool {
	label := method
	if _, err := f.def.OutcomeIndex(label); err != nil {
		label = sentinelUnknownMethod
		if _, err := f.def.OutcomeIndex(label); err != nil {
			return false
		}
	}
	f.pin(f.def, label)
	return true
}

// SetObservedPattern pins the call-group node to label. Unlike the other
// setters there is no substitution: an unrecognized pattern leaves evidence
// unchanged and returns false (scenario S3).
func (f *Facade) SetObservedPattern(label string) bool {
	if _, err := f.callGroups.OutcomeIndex(label); err != nil {
		return false
	}
	f.pin(f.callGroups, label)
	return true
}

// SetObservedCall rebases method onto the facade's receiver type and, if a
// per-method node exists for the rebased name, pins it True. Returns
// whether the node was found.
func (f *Facade) SetObservedCall(method string) bool {
	id := rebase(f.receiverType, method)
	nd, ok := f.methods[id]
	if !ok {
		return false
	}
	f.pin(nd, True)
	return true
}

// SetObservedCalls rebases and pins every member of calls, then pins the
// "no-method" sentinel node False (encoding "these calls were observed and
// we are actively querying"). The result is the logical AND of every
// per-call lookup — any unrecognized method name makes the whole call
// return false, though every recognized one is still pinned.
func (f *Facade) SetObservedCalls(calls []string) bool {
	all := true
	for _, m := range calls {
		if !f.SetObservedCall(m) {
			all = false
		}
	}
	if nd, ok := f.methods[sentinelNoneDefinition]; ok {
		f.pin(nd, False)
	}
	return all
}
