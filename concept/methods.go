// File: methods.go
// Role: Constructive and query API for the Concept/Relation layer.
// AI-HINT (file):
//   - CreateConcept links CONCEPT -> id; Relate links RELATION -> id, plus
//     id.From/id.To for the relation's own tails/heads.
//   - Destroy cascades: destroying a concept first destroys every relation
//     mentioning it, so no relation is left dangling a reference to it.

package concept

import "github.com/katalvlaran/hgraph/core"

// CreateConcept creates a new hyperedge labelled label and tags it as a
// concept by adding it to CONCEPT's To set.
// Complexity: O(1).
func (c *Conceptgraph) CreateConcept(id core.UniqueId, label string) error {
	if err := c.Create(id, label); err != nil {
		return err
	}

	return c.To([]core.UniqueId{ConceptID}, []core.UniqueId{id})
}

// Relate creates a new relation hyperedge id, labelled label, from fromIds
// to toIds, and tags it as a relation by adding it to RELATION's To set.
// Both fromIds and toIds must be non-empty (ErrArityViolation otherwise).
// Complexity: O(len(fromIds) + len(toIds)).
func (c *Conceptgraph) Relate(id core.UniqueId, fromIds, toIds []core.UniqueId, label string) error {
	if len(fromIds) == 0 || len(toIds) == 0 {
		return ErrArityViolation
	}
	if err := c.Create(id, label); err != nil {
		return err
	}
	if err := c.From([]core.UniqueId{id}, fromIds); err != nil {
		return err
	}
	if err := c.To([]core.UniqueId{id}, toIds); err != nil {
		return err
	}

	return c.To([]core.UniqueId{RelationID}, []core.UniqueId{id})
}

// RelateFromTemplate creates a new relation exactly like Relate, copying its
// label from the existing relation templateRelId rather than taking one
// directly. Returns ErrUnknownTemplate if templateRelId is absent.
// Complexity: O(len(fromIds) + len(toIds)).
func (c *Conceptgraph) RelateFromTemplate(id core.UniqueId, fromIds, toIds []core.UniqueId, templateRelId core.UniqueId) error {
	tmpl := c.Get(templateRelId)
	if tmpl == nil {
		return ErrUnknownTemplate
	}

	return c.Relate(id, fromIds, toIds, tmpl.Label())
}

// Find returns every concept id whose label matches (empty label matches
// every concept).
// Complexity: O(N).
func (c *Conceptgraph) Find(label string) []core.UniqueId {
	return c.filterMembership(ConceptID, label)
}

// Relations returns every relation id whose label matches (empty label
// matches every relation).
// Complexity: O(N).
func (c *Conceptgraph) Relations(label string) []core.UniqueId {
	return c.filterMembership(RelationID, label)
}

func (c *Conceptgraph) filterMembership(urEdge core.UniqueId, label string) []core.UniqueId {
	ur := c.Get(urEdge)
	if ur == nil {
		return nil
	}
	var out []core.UniqueId
	for _, id := range ur.To {
		if label == "" || c.labelOf(id) == label {
			out = append(out, id)
		}
	}

	return out
}

func (c *Conceptgraph) labelOf(id core.UniqueId) string {
	if e := c.Get(id); e != nil {
		return e.Label()
	}

	return ""
}

// RelationsFrom returns the ids of relations (optionally filtered by label)
// that have id in their From set.
// Complexity: O(R) where R = len(Relations("")).
func (c *Conceptgraph) RelationsFrom(id core.UniqueId, label string) []core.UniqueId {
	var out []core.UniqueId
	for _, rid := range c.Relations(label) {
		if r := c.Get(rid); r != nil && contains(r.From, id) {
			out = append(out, rid)
		}
	}

	return out
}

// RelationsTo returns the ids of relations (optionally filtered by label)
// that have id in their To set.
// Complexity: O(R).
func (c *Conceptgraph) RelationsTo(id core.UniqueId, label string) []core.UniqueId {
	var out []core.UniqueId
	for _, rid := range c.Relations(label) {
		if r := c.Get(rid); r != nil && contains(r.To, id) {
			out = append(out, rid)
		}
	}

	return out
}

func contains(set []core.UniqueId, v core.UniqueId) bool {
	for _, existing := range set {
		if existing == v {
			return true
		}
	}

	return false
}

// Traverse runs a BFS from rootId, yielding every visited id whose label is
// in visitLabels (all, if empty), following only relations whose label is
// in relationLabels (all, if empty), in the given direction.
// Complexity: see core.Traverse.
func (c *Conceptgraph) Traverse(rootId core.UniqueId, visitLabels, relationLabels []string, direction Direction) []core.UniqueId {
	resultFilter := func(id core.UniqueId) bool {
		return labelAllowed(c.labelOf(id), visitLabels)
	}
	edgeFilter := func(_, candidateRelation core.UniqueId) bool {
		return labelAllowed(c.labelOf(candidateRelation), relationLabels)
	}

	return c.Hypergraph.Traverse(rootId, resultFilter, edgeFilter, direction)
}

func labelAllowed(label string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == label {
			return true
		}
	}

	return false
}

// Destroy removes id from the Conceptgraph. If id is a concept, every
// relation mentioning it (as a tail or a head) is destroyed first, so no
// relation is left referencing a vanished concept; otherwise id is deleted
// normally via the underlying Hypergraph.
// Complexity: O(N) for the relation scan, plus O(N) per Hypergraph.Destroy.
func (c *Conceptgraph) Destroy(id core.UniqueId) {
	if contains(c.Find(""), id) {
		mentioning := core.Unite(c.RelationsFrom(id, ""), c.RelationsTo(id, ""))
		for _, rid := range mentioning {
			c.Hypergraph.Destroy(rid)
		}
	}
	c.Hypergraph.Destroy(id)
}
