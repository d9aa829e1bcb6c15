// Package modelfixture decodes a small JSON shape into a factor.Network,
// for demos and tests only. It is explicitly not the archive container or
// the per-type network deserializer spec.md places out of scope: it knows
// nothing about receiver-type-keyed archives or the wire format those
// components would actually use, only a convenient JSON rendering of
// factor.Network's own model (node id, outcomes, parents, flat CPT) that
// this module's own fixtures and cmd/bnrec demo can load.
package modelfixture

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bayeshint/bnrec/factor"
)

// NodeDescription is the JSON shape of one node: matches §6's "Input
// model" description verbatim (identifier, ordered state labels, ordered
// parent identifiers, flat CPT array).
type NodeDescription struct {
	ID            string    `json:"id"`
	Outcomes      []string  `json:"outcomes"`
	Parents       []string  `json:"parents"`
	Probabilities []float64 `json:"probabilities"`
}

// NetworkDescription is an ordered collection of NodeDescriptions, decoded
// top to bottom; a node's parents may name nodes declared earlier or later
// in the list (DAG-ness is the only ordering constraint, per spec.md §6).
type NetworkDescription struct {
	Nodes []NodeDescription `json:"nodes"`
}

// Decode reads a NetworkDescription from r and builds the corresponding
// factor.Network: first every node and its outcomes (so forward parent
// references resolve), then every node's parents and CPT.
func Decode(r io.Reader) (*factor.Network, error) {
	var desc NetworkDescription
	if err := json.NewDecoder(r).Decode(&desc); err != nil {
		return nil, fmt.Errorf("modelfixture: decode: %w", err)
	}
	return Build(desc)
}

// Build constructs a factor.Network from an already-decoded
// NetworkDescription.
func Build(desc NetworkDescription) (*factor.Network, error) {
	n := factor.NewNetwork()

	nodes := make(map[string]*factor.Node, len(desc.Nodes))
	for _, nd := range desc.Nodes {
		handle, err := n.AddNode(nd.ID)
		if err != nil {
			return nil, fmt.Errorf("modelfixture: add node %q: %w", nd.ID, err)
		}
		for _, label := range nd.Outcomes {
			if err := handle.AddOutcome(label); err != nil {
				return nil, fmt.Errorf("modelfixture: node %q outcome %q: %w", nd.ID, label, err)
			}
		}
		nodes[nd.ID] = handle
	}

	for _, nd := range desc.Nodes {
		handle := nodes[nd.ID]
		parents := make([]*factor.Node, len(nd.Parents))
		for i, pid := range nd.Parents {
			p, ok := nodes[pid]
			if !ok {
				return nil, fmt.Errorf("modelfixture: node %q references undeclared parent %q", nd.ID, pid)
			}
			parents[i] = p
		}
		if err := handle.SetParents(parents); err != nil {
			return nil, fmt.Errorf("modelfixture: node %q parents: %w", nd.ID, err)
		}
		if err := handle.SetProbabilities(nd.Probabilities); err != nil {
			return nil, fmt.Errorf("modelfixture: node %q probabilities: %w", nd.ID, err)
		}
	}

	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("modelfixture: validate: %w", err)
	}

	return n, nil
}
