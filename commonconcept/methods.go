// File: methods.go
// Role: Constructive API. FactOf is the single primitive every reserved
// relation-kind is built from: it witnesses that an already-existing
// relation (or concept) factId is "a fact of" classId, where classId may be
// one of the seven reserved ur-edges or any ordinary relation the caller
// declared. RelateFrom composes "create a relation" with "witness it"; the
// six named wrappers (SubrelationOf, IsA, HasA, PartOf, Connects,
// InstanceOf) are RelateFrom parameterised by the matching reserved kind.
//
// Every witnessing call needs two caller-supplied ids: the relation (or
// fact) being declared, and the witness edge recording the FACT-OF link
// itself — ids are never auto-allocated in this engine (see core, §3), so
// there is no way to derive the second id from the first.

package commonconcept

import "github.com/katalvlaran/hgraph/core"

// FactOf witnesses that factId (an existing relation or concept) is a fact
// of classId: a new relation witnessId is created from factId to classId,
// labelled "FACT-OF", and witnessId is added to the FACT-OF ur-edge's own
// From set — the single collapsed meta-witness described in the
// specification's reflexivity rationale (I6). factId and classId must
// already exist, or ErrMissingReference propagates from the underlying
// Relate/To/From calls.
// Complexity: O(1).
func (g *CommonConceptGraph) FactOf(witnessId, factId, classId core.UniqueId) error {
	if err := g.Relate(witnessId, []core.UniqueId{factId}, []core.UniqueId{classId}, "FACT-OF"); err != nil {
		return err
	}

	return g.From([]core.UniqueId{FactOfID}, []core.UniqueId{witnessId})
}

// RelateFrom creates relation id from fromIds to toIds, labelled label, and
// witnesses it as a fact of classId via witnessId. classId may be any of
// the seven reserved relation-kinds or an ordinary relation class the
// caller has already declared (e.g. a user-defined "love" relation) —
// FactOf imposes no restriction on which existing relation a fact may
// point to.
// Complexity: O(len(fromIds) + len(toIds)).
func (g *CommonConceptGraph) RelateFrom(id, witnessId core.UniqueId, fromIds, toIds []core.UniqueId, label string, classId core.UniqueId) error {
	if err := g.Relate(id, fromIds, toIds, label); err != nil {
		return err
	}

	return g.FactOf(witnessId, id, classId)
}

// SubrelationOf records that subRelId is a subrelation of superRelId: the
// new relation id runs subRelId -> superRelId, labelled "SUBREL-OF", and is
// witnessed as a fact of the SUBREL-OF ur-edge via witnessId.
func (g *CommonConceptGraph) SubrelationOf(id, witnessId, subRelId, superRelId core.UniqueId) error {
	return g.RelateFrom(id, witnessId, []core.UniqueId{subRelId}, []core.UniqueId{superRelId}, "SUBREL-OF", SubrelOfID)
}

// IsA records that subId is a (subclass of) superId.
func (g *CommonConceptGraph) IsA(id, witnessId, subId, superId core.UniqueId) error {
	return g.RelateFrom(id, witnessId, []core.UniqueId{subId}, []core.UniqueId{superId}, "IS-A", IsAID)
}

// HasA records that wholeId has a partId (the inverse reading of PartOf).
func (g *CommonConceptGraph) HasA(id, witnessId, wholeId, partId core.UniqueId) error {
	return g.RelateFrom(id, witnessId, []core.UniqueId{wholeId}, []core.UniqueId{partId}, "HAS-A", HasAID)
}

// PartOf records that partId is a part of wholeId.
func (g *CommonConceptGraph) PartOf(id, witnessId, partId, wholeId core.UniqueId) error {
	return g.RelateFrom(id, witnessId, []core.UniqueId{partId}, []core.UniqueId{wholeId}, "PART-OF", PartOfID)
}

// Connects records an undirected-in-spirit, directed-in-storage link
// between aId and bId.
func (g *CommonConceptGraph) Connects(id, witnessId, aId, bId core.UniqueId) error {
	return g.RelateFrom(id, witnessId, []core.UniqueId{aId}, []core.UniqueId{bId}, "CONNECTS", ConnectsID)
}

// InstanceOf records that instanceId is an instance of classId.
func (g *CommonConceptGraph) InstanceOf(id, witnessId, instanceId, classId core.UniqueId) error {
	return g.RelateFrom(id, witnessId, []core.UniqueId{instanceId}, []core.UniqueId{classId}, "INSTANCE-OF", InstanceOfID)
}

// InstantiateFrom creates a new concept instanceId labelled label and
// records it as an instance of classId via relation relId, witnessed by
// witnessId.
// Complexity: O(1).
func (g *CommonConceptGraph) InstantiateFrom(instanceId core.UniqueId, label string, relId, witnessId, classId core.UniqueId) error {
	if err := g.CreateConcept(instanceId, label); err != nil {
		return err
	}

	return g.InstanceOf(relId, witnessId, instanceId, classId)
}
