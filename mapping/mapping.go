// Package mapping provides Mapping, a many-to-many relation between ids,
// and the handful of set-algebraic operations the match package builds on:
// Identity, Invert, Equal and Join.
//
// 🚀 What is hgraph/mapping?
//
//	A Mapping is nothing more than a map from one id to the set of ids it
//	is related to. It underlies two very different uses in this module:
//
//	  - a subgraph-isomorphism match, keyed by query id, valued by host id
//	  - a single-pushout rewrite's partial morphism p: ids(L) -> ids(R)
//
//	Join is the operation that lets a match and a morphism that share the
//	same domain be combined into a relation between their two ranges —
//	exactly what a rewrite's glue phase needs.
package mapping

import (
	"sort"

	"github.com/katalvlaran/hgraph/core"
)

// Mapping is a many-to-many relation between ids: m[x] is the (deduplicated,
// order-preserving) set of ids x is related to.
type Mapping map[core.UniqueId][]core.UniqueId

// Identity returns the mapping relating every id in ids to itself.
// Complexity: O(len(ids)).
func Identity(ids []core.UniqueId) Mapping {
	m := make(Mapping, len(ids))
	for _, id := range ids {
		m[id] = []core.UniqueId{id}
	}

	return m
}

// Invert returns the mapping with domain and range swapped: y is related to
// x in the result iff x was related to y in m.
// Complexity: O(pairs in m).
func (m Mapping) Invert() Mapping {
	out := make(Mapping, len(m))
	for x, ys := range m {
		for _, y := range ys {
			out[y] = appendUnique(out[y], x)
		}
	}

	return out
}

// Equal reports whether m and other relate exactly the same set of
// (x, y) pairs.
// Complexity: O(pairs in m + pairs in other).
func (m Mapping) Equal(other Mapping) bool {
	if len(m) != len(other) {
		return false
	}
	for x, ys := range m {
		oys, ok := other[x]
		if !ok || !sameSet(ys, oys) {
			return false
		}
	}

	return true
}

func sameSet(a, b []core.UniqueId) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := append([]core.UniqueId(nil), a...), append([]core.UniqueId(nil), b...)
	sort.Strings(sa)
	sort.Strings(sb)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}

	return true
}

// Join combines two mappings that share the same domain X — a: X -> Y and
// b: X -> Z — into their inner join Y -> Z: for every x present in both a
// and b, every (y, z) pair with y in a[x] and z in b[x] is related in the
// result. An x present in only one of a or b contributes nothing.
// Complexity: O(sum over shared x of len(a[x]) * len(b[x])).
func Join(a, b Mapping) Mapping {
	out := make(Mapping)
	for x, ys := range a {
		zs, ok := b[x]
		if !ok {
			continue
		}
		for _, y := range ys {
			for _, z := range zs {
				out[y] = appendUnique(out[y], z)
			}
		}
	}

	return out
}

func appendUnique(set []core.UniqueId, v core.UniqueId) []core.UniqueId {
	for _, existing := range set {
		if existing == v {
			return set
		}
	}

	return append(set, v)
}
