// File: query.go
// Role: Read-only queries: label lookup, incidence projection, neighbour
// scans, and graph import. Neighbour queries never rely on materialized
// back-pointers — they are reconstructed by scanning the Hypergraph's own
// map on every call.
// AI-HINT (file):
//   - Find("") matches every edge; Find(label) filters by exact label.
//   - Next(ids)/Prev(ids) are the directed neighbour scans behind traversal.

package core

import "sort"

// Find returns every id whose label matches. An empty label matches all
// ids. Results are returned in sorted order for determinism.
// Complexity: O(N).
func (h *Hypergraph) Find(label string) []UniqueId {
	var out []UniqueId
	for id, e := range h.edges {
		if label == "" || e.Label() == label {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// FromFiltered returns the union of From sets of the given ids, filtered by
// label (empty label means unfiltered). Ids not present contribute nothing.
// Complexity: O(len(ids) * avg-degree).
func (h *Hypergraph) FromFiltered(ids []UniqueId, label string) []UniqueId {
	var out []UniqueId
	for _, id := range ids {
		e := h.edges[id]
		if e == nil {
			continue
		}
		for _, f := range e.From {
			if label == "" || h.labelOf(f) == label {
				out = appendUnique(out, f)
			}
		}
	}

	return out
}

// ToFiltered returns the union of To sets of the given ids, filtered by
// label (empty label means unfiltered).
// Complexity: O(len(ids) * avg-degree).
func (h *Hypergraph) ToFiltered(ids []UniqueId, label string) []UniqueId {
	var out []UniqueId
	for _, id := range ids {
		e := h.edges[id]
		if e == nil {
			continue
		}
		for _, t := range e.To {
			if label == "" || h.labelOf(t) == label {
				out = appendUnique(out, t)
			}
		}
	}

	return out
}

func (h *Hypergraph) labelOf(id UniqueId) string {
	if e := h.edges[id]; e != nil {
		return e.Label()
	}

	return ""
}

// Next returns, for each id in ids, every relation r touching id such that
// id appears in r.From — i.e. the union of r.To (r's own heads) with every
// r whose From contains id. Concretely: Next = ToFiltered(ids, label) ∪
// {r : id ∈ r.From for some id ∈ ids}. This matches the definition of
// "next": "union of to(ids) and {e : id ∈ e.from}".
// Complexity: O(N) per id (full scan for the membership half).
func (h *Hypergraph) Next(ids []UniqueId, label string) []UniqueId {
	out := h.ToFiltered(ids, label)
	want := toSet(ids)
	for rid, r := range h.edges {
		if label != "" && r.Label() != label {
			continue
		}
		if intersects(r.From, want) {
			out = appendUnique(out, rid)
		}
	}

	return out
}

// Prev is the symmetric counterpart of Next: the union of FromFiltered(ids,
// label) with every relation whose To contains one of ids.
// Complexity: O(N) per id.
func (h *Hypergraph) Prev(ids []UniqueId, label string) []UniqueId {
	out := h.FromFiltered(ids, label)
	want := toSet(ids)
	for rid, r := range h.edges {
		if label != "" && r.Label() != label {
			continue
		}
		if intersects(r.To, want) {
			out = appendUnique(out, rid)
		}
	}

	return out
}

// AllNeighboursOf returns Next(ids,label) ∪ Prev(ids,label).
// Complexity: O(N) per id.
func (h *Hypergraph) AllNeighboursOf(ids []UniqueId, label string) []UniqueId {
	return Unite(h.Next(ids, label), h.Prev(ids, label))
}

// ImportFrom adds each edge of other unless its id already exists in h; for
// ids present in both, the incidence sets are re-unioned so every From/To
// reference still resolves after the merge. Labels of edges already
// present in h are left untouched (h's label wins) — see Union for the
// general binary constructor that makes the "who wins" rule explicit both
// ways.
// Complexity: O(M) where M = other.Len().
func (h *Hypergraph) ImportFrom(other *Hypergraph) {
	for id, oe := range other.edges {
		e, ok := h.edges[id]
		if !ok {
			h.edges[id] = &Hyperedge{
				ID:         id,
				Properties: cloneProps(oe.Properties),
				From:       append([]UniqueId(nil), oe.From...),
				To:         append([]UniqueId(nil), oe.To...),
			}

			continue
		}
		for _, f := range oe.From {
			e.From = appendUnique(e.From, f)
		}
		for _, t := range oe.To {
			e.To = appendUnique(e.To, t)
		}
	}
}

func cloneProps(p map[string]string) map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

func toSet(ids []UniqueId) map[UniqueId]struct{} {
	set := make(map[UniqueId]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

func intersects(ids []UniqueId, set map[UniqueId]struct{}) bool {
	for _, id := range ids {
		if _, ok := set[id]; ok {
			return true
		}
	}

	return false
}
