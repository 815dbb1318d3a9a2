// Package concept layers a Concept/Relation typing discipline on top of a
// core.Hypergraph. It introduces two reserved ur-edges — CONCEPT (id "1")
// and RELATION (id "2") — and tags every concept or relation created
// through this package by linking it into the corresponding ur-edge's To
// set.
//
// This is a vocabulary layer, not a new data structure: it is implemented
// as a struct embedding *core.Hypergraph rather than a subclass with extra
// fields.
package concept

import (
	"errors"

	"github.com/katalvlaran/hgraph/core"
)

// Reserved ur-edge ids.
const (
	ConceptID  core.UniqueId = "1"
	RelationID core.UniqueId = "2"
)

// Sentinel errors for Conceptgraph operations.
var (
	// ErrArityViolation indicates a relation was declared with fewer than
	// one tail or head.
	ErrArityViolation = errors.New("concept: relation requires at least one from and one to id")

	// ErrUnknownTemplate indicates RelateFromTemplate was asked to copy the label of a
	// template relation id that does not exist.
	ErrUnknownTemplate = errors.New("concept: template relation id does not exist")
)

// Conceptgraph distinguishes concepts and relations within a Hypergraph via
// the two reserved ur-edges CONCEPT and RELATION.
type Conceptgraph struct {
	*core.Hypergraph
}

// NewConceptgraph creates an empty Conceptgraph, installing the CONCEPT and
// RELATION ur-edges.
// Complexity: O(1).
func NewConceptgraph() *Conceptgraph {
	h := core.NewHypergraph()
	_ = h.Create(ConceptID, "CONCEPT")
	_ = h.Create(RelationID, "RELATION")

	return &Conceptgraph{Hypergraph: h}
}

// Direction re-exports core.Direction so callers of Traverse need not import
// package core directly for the constant names.
type Direction = core.Direction

const (
	Down = core.Down
	Up   = core.Up
	Both = core.Both
)
