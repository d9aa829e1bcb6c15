// Package inference runs exact junction-tree (Hugin-style) belief
// propagation over a factor.Network compiled into a jtree.JunctionTree.
//
// Each clique owns a flat potential table over the Cartesian product of its
// nodes' outcomes, using the same node-fastest stride convention as
// factor.Node's CPTs. Construction multiplies every node's CPT into its
// home clique; evidence zeroes out disagreeing entries; propagation is lazy
// two-phase message passing (collect then distribute) driven by the
// junction tree's fixed BFS traversal order, run once on the next query
// after any evidence change.
package inference
