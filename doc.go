// Package hgraph is your in-memory engine for generalized directed
// hypergraphs: edges that point from sets of edges to sets of edges, not
// just from vertex to vertex.
//
// 🚀 What is hgraph?
//
//	A small, layered stack that brings together:
//
//	  • core          — Hyperedge & Hypergraph: the bare data model, plus
//	                     the one shared BFS primitive every higher layer reuses
//	  • mapping        — many-to-many id relations (Identity, Invert, Join)
//	  • concept        — a Concept/Relation vocabulary layered on core
//	  • commonconcept  — FACT-OF, IS-A, HAS-A, PART-OF, CONNECTS, INSTANCE-OF
//	  • match          — subgraph-isomorphism matching & single-pushout rewriting
//	  • serialize      — stable, byte-deterministic textual encoding
//
// Nodes are simply Hyperedges with empty incidence sets — there is no
// separate Vertex type anywhere in this stack. See each subpackage's own
// doc comment for its part of the model.
//
// This package holds no code of its own; it exists to document how the
// subpackages fit together.
package hgraph
