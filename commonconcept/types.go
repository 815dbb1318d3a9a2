// Package commonconcept layers seven reserved relation-kinds on top of
// package concept: FACT-OF, SUBREL-OF, IS-A, HAS-A, PART-OF, CONNECTS and
// INSTANCE-OF (ids "3".."9"). Membership in a relation-kind is recorded the
// same way a user-level fact is: a FACT-OF witness edge links the tagged
// relation to the kind's ur-edge id, and every witness id is accumulated
// directly in the FACT-OF ur-edge's own From set (see FactOf) rather than
// in the kind's own incidence — the single collapsed meta-witness that
// stands in for what would otherwise be an infinite regress of "this
// FACT-OF link is itself a fact of FACT-OF" (I6).
package commonconcept

import (
	"github.com/katalvlaran/hgraph/concept"
	"github.com/katalvlaran/hgraph/core"
)

// Reserved relation-kind ur-edge ids.
const (
	FactOfID     core.UniqueId = "3"
	SubrelOfID   core.UniqueId = "4"
	IsAID        core.UniqueId = "5"
	HasAID       core.UniqueId = "6"
	PartOfID     core.UniqueId = "7"
	ConnectsID   core.UniqueId = "8"
	InstanceOfID core.UniqueId = "9"
)

var reservedKindLabels = map[core.UniqueId]string{
	FactOfID:     "FACT-OF",
	SubrelOfID:   "SUBREL-OF",
	IsAID:        "IS-A",
	HasAID:       "HAS-A",
	PartOfID:     "PART-OF",
	ConnectsID:   "CONNECTS",
	InstanceOfID: "INSTANCE-OF",
}

// reservedKindOrder fixes construction order so NewCommonConceptGraph never
// depends on Go's unspecified map-iteration order.
var reservedKindOrder = []core.UniqueId{
	FactOfID, SubrelOfID, IsAID, HasAID, PartOfID, ConnectsID, InstanceOfID,
}

// Sentinel errors for CommonConceptGraph operations.
var (
	// ErrArityViolation indicates a relation was declared with fewer than
	// one tail or head, propagated from package concept.
	ErrArityViolation = concept.ErrArityViolation
)

// CommonConceptGraph extends a Conceptgraph with the seven reserved
// relation-kinds.
type CommonConceptGraph struct {
	*concept.Conceptgraph
}

// NewCommonConceptGraph creates an empty CommonConceptGraph, installing the
// CONCEPT/RELATION ur-edges (via concept.NewConceptgraph) and the seven
// reserved relation-kind ur-edges. FACT-OF self-points from construction
// its own From and To member.
// Complexity: O(1).
func NewCommonConceptGraph() *CommonConceptGraph {
	cg := concept.NewConceptgraph()
	for _, id := range reservedKindOrder {
		_ = cg.Create(id, reservedKindLabels[id])
		_ = cg.To([]core.UniqueId{concept.RelationID}, []core.UniqueId{id})
	}
	_ = cg.From([]core.UniqueId{FactOfID}, []core.UniqueId{FactOfID})
	_ = cg.To([]core.UniqueId{FactOfID}, []core.UniqueId{FactOfID})

	return &CommonConceptGraph{Conceptgraph: cg}
}

