package recommend

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bayeshint/bnrec/factor"
	"github.com/bayeshint/bnrec/inference"
	"github.com/bayeshint/bnrec/jtree"
)

// Facade is the per-receiver-type recommendation wrapper: the owned network
// and engine, references to the four semantic singleton nodes, and the
// per-method node index.
type Facade struct {
	receiverType string
	sessionID    uuid.UUID
	logger       *zap.Logger

	network *factor.Network
	tree    *jtree.JunctionTree
	engine  *inference.Engine

	context    *factor.Node
	callGroups *factor.Node
	def        *factor.Node
	defKind    *factor.Node
	methods    map[string]*factor.Node // node ID (unrebased) -> node
}

// New builds a Facade around receiverType and an already-decoded,
// unvalidated network: it validates DAG-ness, compiles the junction tree,
// initializes the inference engine, and locates the four required
// singleton nodes. A nil logger discards all log output.
func New(receiverType string, network *factor.Network, logger *zap.Logger) (*Facade, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := network.Validate(); err != nil {
		return nil, err
	}
	tree, err := jtree.Build(network)
	if err != nil {
		return nil, err
	}
	engine := inference.New(network, tree)

	f := &Facade{
		receiverType: receiverType,
		sessionID:    uuid.New(),
		logger:       logger,
		network:      network,
		tree:         tree,
		engine:       engine,
		methods:      make(map[string]*factor.Node),
	}

	singletons := map[string]**factor.Node{
		NodeContext:    &f.context,
		NodeCallGroups: &f.callGroups,
		NodeDef:        &f.def,
		NodeDefKind:    &f.defKind,
	}
	for _, nd := range network.Nodes() {
		if slot, ok := singletons[nd.ID()]; ok {
			if nd.OutcomeCount() < 2 {
				return nil, ErrSingletonTooFewOutcomes
			}
			*slot = nd
			continue
		}
		f.methods[nd.ID()] = nd
	}
	for id, slot := range singletons {
		if *slot == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingSingleton, id)
		}
	}

	logger.Info("recommend facade constructed",
		zap.String("receiver_type", receiverType),
		zap.String("session_id", f.sessionID.String()),
		zap.Int("node_count", network.NodeCount()),
		zap.Int("clique_count", tree.CliqueCount()),
		zap.Int("method_count", len(f.methods)),
	)

	return f, nil
}

// ReceiverType returns the facade's receiver type name.
func (f *Facade) ReceiverType() string { return f.receiverType }

// SessionID returns the facade's correlation id, used to tie its log lines
// together. Clone mints a fresh id for the returned Facade.
func (f *Facade) SessionID() uuid.UUID { return f.sessionID }

// Reset clears all evidence; the junction tree and clique potentials are
// untouched.
func (f *Facade) Reset() {
	f.engine.Reset()
	f.logger.Debug("evidence reset", zap.String("session_id", f.sessionID.String()))
}

// Clone returns an independent Facade sharing this one's immutable network
// and junction tree but with a fresh inference.Engine (no evidence, clean
// potentials) and a new session id — implementing spec.md §5's
// shared-ownership contract.
func (f *Facade) Clone() *Facade {
	clone := &Facade{
		receiverType: f.receiverType,
		sessionID:    uuid.New(),
		logger:       f.logger,
		network:      f.network,
		tree:         f.tree,
		engine:       inference.New(f.network, f.tree),
		context:      f.context,
		callGroups:   f.callGroups,
		def:          f.def,
		defKind:      f.defKind,
		methods:      f.methods,
	}
	return clone
}

// knownLabels returns a sorted copy of a singleton node's outcome space.
func knownLabels(nd *factor.Node) []string {
	out := nd.Outcomes()
	sort.Strings(out)
	return out
}

// KnownEnclosingMethods returns the context node's outcome space, sorted.
func (f *Facade) KnownEnclosingMethods() []string { return knownLabels(f.context) }

// KnownPatterns returns the call-group node's outcome space, sorted.
func (f *Facade) KnownPatterns() []string { return knownLabels(f.callGroups) }

// KnownCalls returns the identifiers of every per-method node, sorted.
func (f *Facade) KnownCalls() []string {
	out := make([]string, 0, len(f.methods))
	for id := range f.methods {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
