// Package factor implements the discrete factor model: nodes, ordered
// outcome labels, parent lists, and conditional probability tables (CPTs)
// stored as flat, strided arrays.
//
// A Node's CPT is addressed by the stride convention documented on
// Node.SetProbabilities: the node's own outcome index varies fastest, then
// each parent in declaration order. Rows over a fixed parent assignment are
// therefore contiguous blocks of length OutcomeCount() and are renormalized
// to sum 1 within a small tolerance if they drift.
//
// A Network is a DAG over Nodes, addressable by identifier and by a stable
// construction-order index. Validate (called once by downstream builders)
// rejects cycles and undeclared parents by building a transient core.Graph
// and running dfs.TopologicalSort over it.
package factor
