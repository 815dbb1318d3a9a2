// Package commonconcept adds seven reserved relation-kinds — FACT-OF,
// SUBREL-OF, IS-A, HAS-A, PART-OF, CONNECTS, INSTANCE-OF — to a
// concept.Conceptgraph.
//
// 🚀 What is hgraph/commonconcept?
//
//	Every constructive method (FactOf, IsA, PartOf, ...) is a thin wrapper
//	over the single generic RelateFrom primitive: create a Relation, then
//	witness it as a fact of one of the seven reserved kinds through a
//	separate FACT-OF edge running from the relation to the kind's ur-edge;
//	every such witness id is collected in the FACT-OF ur-edge's own From
//	set.
//
//	SubclassesOf, SuperclassesOf, PartsOf and SubrelationsOf are transitive
//	closures, all built on the one shared core.Traverse primitive.
//	FactsOf, InstancesOf, ClassesOf and ChildrenOf are deliberately
//	non-transitive, one-hop projections.
package commonconcept
