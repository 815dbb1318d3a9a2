// Package match implements subgraph-isomorphism matching and
// single-pushout graph rewriting over core.Hypergraph.
//
// 🚀 What is hgraph/match?
//
//	Matcher enumerates matches of a small query graph inside a larger host
//	graph one at a time via Next(), backtracking over a canonical
//	(sorted) query-id order. The search stack is the Matcher's only piece
//	of mutable state — every call to Next() resumes exactly where the
//	last one left off, instead of re-deriving the whole search.
//
//	Rewrite layers single-pushout graph rewriting on top of Matcher: find
//	a match of a left pattern, decide (via a caller-supplied partial
//	morphism) which matched ids survive into a right pattern, and glue
//	the result back into a cloned copy of the host.
package match
