// Package dfs computes a topological ordering of a directed core.Graph via
// a White/Gray/Black depth-first walk, used by factor.Network.Validate to
// reject cyclic networks.
//
// TopologicalSort(g) returns a linear vertex order such that for every
// directed edge u→v, u precedes v, or ErrCycleDetected if g contains a
// cycle.
package dfs
