// File: clone.go
// Role: Cloning (CloneEmpty/Clone) and the binary constructor Union (H(A,B)).
// Determinism:
//   - Clone preserves ids, labels, and incidence sets element-for-element.
//   - Union: for an id shared by both graphs, the label is taken from A
//     (caller-visible convention: "A wins"); incidence sets are unioned.

package core

// CloneEmpty returns a new, empty Hypergraph. It exists alongside Clone for
// symmetry with the rewriter's need to start from "a graph shaped like this
// one but with nothing in it yet" in some callers; for a Hypergraph there is
// no separate vertex/edge catalog to partially copy, so CloneEmpty simply
// allocates fresh storage.
// Complexity: O(1).
func (h *Hypergraph) CloneEmpty() *Hypergraph {
	return NewHypergraph()
}

// Clone returns a deep copy of h: every id, label, and incidence set is
// duplicated so that mutating the clone never affects h.
// Complexity: O(N) where N = h.Len().
func (h *Hypergraph) Clone() *Hypergraph {
	out := NewHypergraph()
	for id, e := range h.edges {
		out.edges[id] = &Hyperedge{
			ID:         id,
			Properties: cloneProps(e.Properties),
			From:       append([]UniqueId(nil), e.From...),
			To:         append([]UniqueId(nil), e.To...),
		}
	}

	return out
}

// Union implements the binary constructor H(A,B): a new Hypergraph
// whose edge set is ids(A) ∪ ids(B). For each id present in both, the label
// is taken from A (A wins) and the incidence sets are unioned. Neither A nor
// B is mutated.
// Complexity: O(A.Len() + B.Len()).
func Union(a, b *Hypergraph) *Hypergraph {
	out := a.Clone()
	for id, be := range b.edges {
		ae, ok := out.edges[id]
		if !ok {
			out.edges[id] = &Hyperedge{
				ID:         id,
				Properties: cloneProps(be.Properties),
				From:       append([]UniqueId(nil), be.From...),
				To:         append([]UniqueId(nil), be.To...),
			}

			continue
		}
		// A already supplied id — A's label wins, incidence sets unite.
		ae.From = Unite(ae.From, be.From)
		ae.To = Unite(ae.To, be.To)
	}

	return out
}
