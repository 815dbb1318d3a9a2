// File: queries.go
// Role: Query API. SubclassesOf/SuperclassesOf/PartsOf are
// transitive closures built on the single core.Traverse primitive;
// FactsOf/InstancesOf/ClassesOf are non-transitive one-hop projections.

package commonconcept

import "github.com/katalvlaran/hgraph/core"

// labelOf returns the label of id, or "" if id is absent.
func (g *CommonConceptGraph) labelOf(id core.UniqueId) string {
	if e := g.Get(id); e != nil {
		return e.Label()
	}

	return ""
}

// witnesses returns every FACT-OF witness edge id recorded directly in the
// FACT-OF ur-edge's own From set (the base case of the FACT-OF regress
// collapse, I6 — see NewCommonConceptGraph and FactOf).
func (g *CommonConceptGraph) witnesses() []core.UniqueId {
	fo := g.Get(FactOfID)
	if fo == nil {
		return nil
	}

	return fo.From
}

// kindMembers returns every relation id witnessed (via a FACT-OF link) as a
// fact of kindId — i.e. every relation RelateFrom/FactOf has tagged as an
// instance of kindId. FactOfID itself is the base case: its members are its
// own witnesses, not a further layer of FACT-OF witnessing.
func (g *CommonConceptGraph) kindMembers(kindId core.UniqueId) []core.UniqueId {
	if kindId == FactOfID {
		return g.witnesses()
	}

	return g.oneHopFrom(FactOfID, kindId)
}

// oneHopFrom returns the union of the From sets of every kindId-tagged relation
// whose To set contains anchorId (the non-transitive "who points here"
// projection shared by FactsOf/InstancesOf).
func (g *CommonConceptGraph) oneHopFrom(kindId, anchorId core.UniqueId) []core.UniqueId {
	var out []core.UniqueId
	for _, rid := range g.kindMembers(kindId) {
		r := g.Get(rid)
		if r == nil {
			continue
		}
		for _, t := range r.To {
			if t == anchorId {
				out = core.Unite(out, r.From)
			}
		}
	}

	return out
}

// oneHopTo is the mirror of oneHopFrom: relations anchored at anchorId via
// From, projected onto their To set.
func (g *CommonConceptGraph) oneHopTo(kindId, anchorId core.UniqueId) []core.UniqueId {
	var out []core.UniqueId
	for _, rid := range g.kindMembers(kindId) {
		r := g.Get(rid)
		if r == nil {
			continue
		}
		for _, f := range r.From {
			if f == anchorId {
				out = core.Unite(out, r.To)
			}
		}
	}

	return out
}

// FactsOf returns every subject id recorded as a fact of conceptId,
// filtered by label (empty label matches every subject). Non-transitive:
// a fact filed under a subrelation of conceptId is not included — see
// TransitiveClosure for that.
func (g *CommonConceptGraph) FactsOf(conceptId core.UniqueId, label string) []core.UniqueId {
	subjects := g.oneHopFrom(FactOfID, conceptId)
	if label == "" {
		return subjects
	}
	out := make([]core.UniqueId, 0, len(subjects))
	for _, id := range subjects {
		if g.labelOf(id) == label {
			out = append(out, id)
		}
	}

	return out
}

// closure runs the shared BFS primitive from rootId, following only
// relations tagged kindId, in the given direction. rootId is included in
// the result (a class is trivially its own (non-strict) subclass/part/
// subrelation), matching the worked example in the specification's
// testable-scenarios section.
func (g *CommonConceptGraph) closure(rootId, kindId core.UniqueId, direction core.Direction) []core.UniqueId {
	edgeFilter := func(_, candidateRelation core.UniqueId) bool {
		if candidateRelation == rootId {
			return false // no self-incidence step outside the reserved FACT-OF loop
		}
		for _, rid := range g.kindMembers(kindId) {
			if rid == candidateRelation {
				return true
			}
		}

		return false
	}
	// g.Traverse (promoted from Conceptgraph) takes label predicates, not id
	// predicates — go straight to the underlying core.Hypergraph here.
	return g.Conceptgraph.Hypergraph.Traverse(rootId, nil, edgeFilter, direction)
}

// SubrelationsOf returns every relation transitively declared a SUBREL-OF
// relId (its subrelation chain), plus relId itself. SubrelationOf(sub,
// super) points sub -> super, same as IsA, so this walks Up from relId,
// mirroring SubclassesOf.
func (g *CommonConceptGraph) SubrelationsOf(relId core.UniqueId) []core.UniqueId {
	return g.closure(relId, SubrelOfID, core.Up)
}

// SubclassesOf returns every concept transitively IS-A'd to classId.
func (g *CommonConceptGraph) SubclassesOf(classId core.UniqueId) []core.UniqueId {
	return g.closure(classId, IsAID, core.Up)
}

// SuperclassesOf returns every concept classId is transitively IS-A'd to.
func (g *CommonConceptGraph) SuperclassesOf(classId core.UniqueId) []core.UniqueId {
	return g.closure(classId, IsAID, core.Down)
}

// PartsOf returns every concept transitively PART-OF'd to wholeId.
func (g *CommonConceptGraph) PartsOf(wholeId core.UniqueId) []core.UniqueId {
	return g.closure(wholeId, PartOfID, core.Up)
}

// InstancesOf returns every instance directly recorded as INSTANCE-OF
// classId (non-transitive).
func (g *CommonConceptGraph) InstancesOf(classId core.UniqueId) []core.UniqueId {
	return g.oneHopFrom(InstanceOfID, classId)
}

// ClassesOf returns every class instanceId is directly recorded as an
// INSTANCE-OF.
func (g *CommonConceptGraph) ClassesOf(instanceId core.UniqueId) []core.UniqueId {
	return g.oneHopTo(InstanceOfID, instanceId)
}

// ChildrenOf returns every concept directly (one hop, non-transitive) IS-A'd
// to classId — the immediate-subclass projection, as opposed to the full
// transitive closure returned by SubclassesOf.
func (g *CommonConceptGraph) ChildrenOf(classId core.UniqueId) []core.UniqueId {
	return g.oneHopFrom(IsAID, classId)
}

// TransitiveClosure runs a traversal from rootId, following any relation
// whose label is in relId's subrelation label cover — relId's own label
// together with the label of every relation transitively SUBREL-OF'd
// beneath it — and keeps only visited ids matching label (empty matches
// all). This is what lets a fact recorded under a more specific relation
// class (e.g. "love") surface when a caller queries a more general one it
// is declared a SUBREL-OF (e.g. "like"): the two relation classes are
// distinct ids, but traversal follows any edge carrying either label once
// the cover is computed, per the "Rationale for label-based traversal" in
// the specification.
func (g *CommonConceptGraph) TransitiveClosure(rootId, relId core.UniqueId, label string, direction core.Direction) []core.UniqueId {
	cover := g.subrelationLabelCover(relId)
	edgeFilter := func(_, candidateRelation core.UniqueId) bool {
		return cover[g.labelOf(candidateRelation)]
	}
	resultFilter := func(id core.UniqueId) bool {
		return label == "" || g.labelOf(id) == label
	}

	return g.Conceptgraph.Hypergraph.Traverse(rootId, resultFilter, edgeFilter, direction)
}

// subrelationLabelCover returns relId's own label together with the labels
// of every relation that is transitively a SUBREL-OF relId (every
// more-specific relation class subsumed by relId).
func (g *CommonConceptGraph) subrelationLabelCover(relId core.UniqueId) map[string]bool {
	cover := map[string]bool{g.labelOf(relId): true}
	for _, sub := range g.closure(relId, SubrelOfID, core.Up) {
		cover[g.labelOf(sub)] = true
	}

	return cover
}
