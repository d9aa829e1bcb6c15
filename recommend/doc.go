// Package recommend implements the per-receiver-type recommendation facade:
// a thin, semantically-aware wrapper around a factor.Network, its compiled
// jtree.JunctionTree, and a live inference.Engine.
//
// The facade binds five node roles inside the network — context,
// call-group, definition, kind, and one per candidate method call — and
// translates typed observations (an enclosing method, a variable kind, a
// usage pattern, a set of calls already made) into evidence on the
// underlying engine, and translates belief vectors back into ranked
// Recommendation values.
//
// A Facade is single-threaded cooperative: one goroutine drives it through
// a sequence of observations and queries. Independent Facade instances
// (including Clones of one another) may run on separate goroutines without
// coordination; see Facade.Clone.
package recommend
