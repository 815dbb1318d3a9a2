// Package core is your in-memory primitive for generalized hypergraphs.
//
// 🚀 What is hgraph/core?
//
//	A tiny, zero-dependency foundation that brings together:
//
//	  • Hyperedge: an id, a label, and two incidence sets (From, To) of ids
//	  • Hypergraph: the map that owns every Hyperedge, plus mutation,
//	    projection, neighbour-scan, clone, union, and set-algebra helpers
//	  • Traverse: the one BFS primitive every higher layer reuses
//
// Nodes are simply Hyperedges with empty From and To — there is no separate
// Vertex type. An edge may point from any set of edges to any set of
// edges, which is what makes this a *generalized* hypergraph rather than an
// ordinary one.
//
// Invariants maintained by every exported method:
//
//	- every id mentioned in a From/To set refers to an edge present in
//	  the map — Destroy scans and strips dangling references first.
//	- no back-pointers are ever materialized; neighbour queries
//	  reconstruct them by scan.
//	- labels need not be unique.
//	- id equality is entity equality (Union/ImportFrom rely on this).
//
// See: doc comments on Hyperedge, Hypergraph, and Traverse for details.
package core
