// File: methods.go
// Role: Hyperedge lifecycle & incidence mutation: Create, Destroy, To, From,
//       Disconnect. Every mutation keeps every id mentioned in a From/To
//       set referring to an edge present in the map.
// Determinism:
//   - Incidence sets preserve insertion order and reject duplicates.
// AI-HINT (file):
//   - Create is idempotent when the label matches; ErrDuplicateID otherwise.
//   - To/From are no-ops (and report it) if any referenced id is missing.

package core

// Create inserts a new hyperedge with the given id and label.
//
// Semantics: fails with ErrDuplicateID iff an edge with id already
// exists under a different label; existing-and-same-label is idempotent
// success. Empty id is rejected with ErrEmptyID.
// Complexity: O(1).
func (h *Hypergraph) Create(id UniqueId, label string) error {
	if id == "" {
		return ErrEmptyID
	}
	if existing, ok := h.edges[id]; ok {
		if existing.Label() == label {
			return nil // idempotent: same id, same label
		}

		return ErrDuplicateID
	}
	h.edges[id] = &Hyperedge{
		ID:         id,
		Properties: map[string]string{LabelKey: label},
	}

	return nil
}

// Destroy removes id from the Hypergraph: it first scans every other edge
// and strips id from their From/To sets, then erases id's own entry.
// Idempotent — destroying an absent id is a no-op.
// Complexity: O(N) where N is the number of stored edges.
func (h *Hypergraph) Destroy(id UniqueId) {
	if _, ok := h.edges[id]; !ok {
		return
	}
	for _, e := range h.edges {
		e.From = removeID(e.From, id)
		e.To = removeID(e.To, id)
	}
	delete(h.edges, id)
}

// Disconnect removes id from every other edge's incidence sets but leaves
// the edge itself (and its own From/To) untouched. Idempotent.
// Complexity: O(N).
func (h *Hypergraph) Disconnect(id UniqueId) {
	for other, e := range h.edges {
		if other == id {
			continue
		}
		e.From = removeID(e.From, id)
		e.To = removeID(e.To, id)
	}
}

// To adds every d in dstIds to s.To, for each s in srcIds. It is a no-op
// (and returns ErrMissingReference) if any id in srcIds or dstIds is absent
// from the graph — no partial mutation is applied in that case.
// Complexity: O(len(srcIds) * len(dstIds)).
func (h *Hypergraph) To(srcIds, dstIds []UniqueId) error {
	if err := h.checkPresent(srcIds); err != nil {
		return err
	}
	if err := h.checkPresent(dstIds); err != nil {
		return err
	}
	for _, s := range srcIds {
		e := h.edges[s]
		for _, d := range dstIds {
			e.To = appendUnique(e.To, d)
		}
	}

	return nil
}

// From adds every d in dstIds to s.From, for each s in srcIds — the
// symmetric counterpart of To. Same failure semantics as To.
// Complexity: O(len(srcIds) * len(dstIds)).
func (h *Hypergraph) From(srcIds, dstIds []UniqueId) error {
	if err := h.checkPresent(srcIds); err != nil {
		return err
	}
	if err := h.checkPresent(dstIds); err != nil {
		return err
	}
	for _, s := range srcIds {
		e := h.edges[s]
		for _, d := range dstIds {
			e.From = appendUnique(e.From, d)
		}
	}

	return nil
}

// checkPresent returns ErrMissingReference if any id in ids is absent.
func (h *Hypergraph) checkPresent(ids []UniqueId) error {
	for _, id := range ids {
		if !h.Has(id) {
			return ErrMissingReference
		}
	}

	return nil
}

// appendUnique appends v to set unless it is already present, preserving
// insertion order.
func appendUnique(set []UniqueId, v UniqueId) []UniqueId {
	for _, existing := range set {
		if existing == v {
			return set
		}
	}

	return append(set, v)
}

// removeID returns set with v removed, preserving the relative order of the
// remaining elements.
func removeID(set []UniqueId, v UniqueId) []UniqueId {
	if len(set) == 0 {
		return set
	}
	out := set[:0:0]
	for _, existing := range set {
		if existing != v {
			out = append(out, existing)
		}
	}

	return out
}
