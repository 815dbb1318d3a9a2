// File: traverse.go
// Role: The single BFS primitive every higher-level closure (concept
// traversal, common-concept transitive closure) is built from. There is
// deliberately only one traversal implementation in this module — callers
// differ only in the predicates and direction they supply.
//
// Model note: a plain edge "u -> v" in this engine is recorded as v being
// added to u's own To set (core.To), not as a third connector entity — see
// the definition of next()/prev(). Traverse therefore treats each vertex
// u as touching two kinds of relation when stepping DOWN: (a) itself, via
// its own To set, and (b) any other edge r with u in r.From (a genuine
// shared N-ary relation, as built by the concept/commonconcept layers). UP
// is the mirror image. This reproduces next()/prev() exactly while
// still generalizing to the relation-typed edges of higher layers.
//
// Determinism:
//   - Visit order is BFS order by id-discovery. Because relations touching
//     a vertex are found by scanning the map (there are no back-pointers),
//     and Go map iteration order is unspecified, candidate relations are
//     visited in sorted-id order, then their own incidence-set order is
//     used to enqueue neighbours.
package core

import "sort"

// Direction constrains which way Traverse follows a relation relative to
// the vertex currently being expanded.
type Direction int

const (
	// Down follows relations for which the current vertex is in From,
	// continuing into their To set ("with" the edge's own direction).
	Down Direction = iota
	// Up follows relations for which the current vertex is in To,
	// continuing into their From set ("against" the edge's own direction).
	Up
	// Both follows both Down and Up edges.
	Both
)

// Traverse runs a breadth-first search from rootId. resultFilter(id) decides
// whether a visited id is included in the returned result (nil includes
// everything); edgeFilter(current, candidateRelation) decides whether a
// relation touching the current vertex is followed at all (nil follows
// everything; candidateRelation equals current itself for the "own
// incidence" step described above). direction constrains which of a
// relation's incidence sets are followed.
//
// An absent rootId yields an empty result without error — Traverse is a
// pure query, never a mutation.
// Complexity: O(V) vertices dequeued, each doing an O(N) scan for relations
// touching it (N = h.Len()) — O(V*N) worst case, the price of having no
// materialized back-pointers.
func (h *Hypergraph) Traverse(rootId UniqueId, resultFilter func(id UniqueId) bool, edgeFilter func(current, candidateRelation UniqueId) bool, direction Direction) []UniqueId {
	if resultFilter == nil {
		resultFilter = func(UniqueId) bool { return true }
	}
	if edgeFilter == nil {
		edgeFilter = func(string, string) bool { return true }
	}

	visited := make(map[UniqueId]bool)
	queue := []UniqueId{rootId}
	var result []UniqueId

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if visited[u] {
			continue
		}
		visited[u] = true
		if resultFilter(u) {
			result = append(result, u)
		}

		if direction == Down || direction == Both {
			h.stepDown(u, edgeFilter, func(next UniqueId) {
				if !visited[next] {
					queue = append(queue, next)
				}
			})
		}
		if direction == Up || direction == Both {
			h.stepUp(u, edgeFilter, func(next UniqueId) {
				if !visited[next] {
					queue = append(queue, next)
				}
			})
		}
	}

	return result
}

// stepDown enqueues, via emit, every id reachable from u by following u's
// own To set and every relation r (r != u) with u in r.From.
func (h *Hypergraph) stepDown(u UniqueId, edgeFilter func(current, candidateRelation UniqueId) bool, emit func(UniqueId)) {
	if self := h.edges[u]; self != nil && edgeFilter(u, u) {
		for _, t := range self.To {
			emit(t)
		}
	}
	for _, rid := range h.participantsSorted(u, false) {
		if !edgeFilter(u, rid) {
			continue
		}
		for _, t := range h.edges[rid].To {
			emit(t)
		}
	}
}

// stepUp is the mirror of stepDown: u's own From set, plus relations with u
// in r.To.
func (h *Hypergraph) stepUp(u UniqueId, edgeFilter func(current, candidateRelation UniqueId) bool, emit func(UniqueId)) {
	if self := h.edges[u]; self != nil && edgeFilter(u, u) {
		for _, f := range self.From {
			emit(f)
		}
	}
	for _, rid := range h.participantsSorted(u, true) {
		if !edgeFilter(u, rid) {
			continue
		}
		for _, f := range h.edges[rid].From {
			emit(f)
		}
	}
}

// participantsSorted returns, sorted, every edge id r (r != u) such that u
// is in r.To (viaTo=true) or r.From (viaTo=false).
func (h *Hypergraph) participantsSorted(u UniqueId, viaTo bool) []UniqueId {
	var out []UniqueId
	for rid, r := range h.edges {
		if rid == u {
			continue
		}
		if viaTo && containsID(r.To, u) {
			out = append(out, rid)
		}
		if !viaTo && containsID(r.From, u) {
			out = append(out, rid)
		}
	}
	sort.Strings(out)

	return out
}

func containsID(set []UniqueId, v UniqueId) bool {
	for _, existing := range set {
		if existing == v {
			return true
		}
	}

	return false
}
