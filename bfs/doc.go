// Package bfs provides a single breadth-first traversal, BFS, used by
// jtree.Build to turn the clique spanning tree into a rooted walk order:
// Order is the distribute-phase clique order (every clique follows its
// parent), and Parent records each clique's parent in that rooted tree.
package bfs
