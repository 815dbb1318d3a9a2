// Package concept layers a Concept/Relation vocabulary on top of package
// core.
//
// 🚀 What is hgraph/concept?
//
//	Two reserved ur-edges mark what kind of thing an ordinary Hyperedge is:
//
//	  • CONCEPT  (id "1") — its To set lists every concept id
//	  • RELATION (id "2") — its To set lists every relation id
//
//	CreateConcept and Relate are the only ways through this package to add
//	an edge to either set, so Find/Relations can answer "what concepts (or
//	relations) exist" by a single incidence-set read rather than a scan.
//
// Traverse wraps core.Traverse with label predicates so callers can walk
// "only HAS-A relations between concepts labelled Product" without hand
// writing the BFS themselves.
package concept
