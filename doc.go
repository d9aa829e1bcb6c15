// Package bnrec is a per-receiver-type code-completion recommender: given a
// partial usage context around a variable of some type, it recommends which
// method to call next, how the variable was likely defined, and which
// high-level usage pattern it belongs to.
//
// Recommendations are produced by exact probabilistic inference over a
// discrete Bayesian network trained per receiver type: bnrec compiles the
// network into a junction tree once, then answers marginal queries under
// whatever evidence the caller has observed so far.
//
// The module is organized bottom-up:
//
//	core/, dfs/, bfs/  — the graph substrate jtree builds on
//	factor/            — nodes, outcomes, parents, conditional probability tables
//	jtree/             — moralize, triangulate, build the junction tree
//	inference/         — clique potentials, evidence, two-phase propagation
//	recommend/         — the per-type facade: observations in, ranked recommendations out
//
// Loading a trained network from an on-disk archive, and the network
// deserializer itself, are out of scope: this module receives an
// already-decoded factor.Network. internal/modelfixture is a thin JSON
// loader for demos and tests only, not a stand-in for that archive format.
package bnrec
