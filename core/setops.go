// File: setops.go
// Role: Set algebra over ordered id sequences (Unite, Intersect, Subtract),
// with deduplication. The concept and commonconcept layers use Unite for
// id-set unions; concept, mapping and match also keep small local slice
// helpers of their own.
// Determinism:
//   - Results are deduplicated and returned in first-seen order from the
//     left-to-right argument scan, never re-sorted — callers that need a
//     stable sorted view call sort.Strings themselves (as Find does).

package core

// Unite returns the deduplicated union of a and b, in first-seen order
// (everything from a, then new elements of b).
// Complexity: O(len(a) + len(b)).
func Unite(a, b []UniqueId) []UniqueId {
	seen := make(map[UniqueId]struct{}, len(a)+len(b))
	out := make([]UniqueId, 0, len(a)+len(b))
	for _, id := range a {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}

// Intersect returns the deduplicated set of ids present in both a and b, in
// a's order.
// Complexity: O(len(a) + len(b)).
func Intersect(a, b []UniqueId) []UniqueId {
	inB := toSet(b)
	seen := make(map[UniqueId]struct{}, len(a))
	var out []UniqueId
	for _, id := range a {
		if _, ok := inB[id]; !ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// Subtract returns the deduplicated set of ids in a that are not in b, in
// a's order.
// Complexity: O(len(a) + len(b)).
func Subtract(a, b []UniqueId) []UniqueId {
	inB := toSet(b)
	seen := make(map[UniqueId]struct{}, len(a))
	var out []UniqueId
	for _, id := range a {
		if _, ok := inB[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
