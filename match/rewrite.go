// File: rewrite.go
// Role: Single-pushout graph rewriting: given a match of left inside
// host and a partial morphism p: ids(left) -> ids(right), produce a new
// host with the match replaced by right, glued back into the surrounding
// graph via p.

package match

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hgraph/core"
	"github.com/katalvlaran/hgraph/mapping"
)

// Rewrite performs one single-pushout rewrite of host:
//
//  1. validate that partial only references ids(left) in its domain and
//     ids(right) in its range
//  2. find a match of left inside host (via NewMatcher/Next, opts forwarded)
//  3. clone host, so the original is left untouched
//  4. delete every matched id left unmapped by partial (p undefined there)
//  5. glue: join the match (left -> host) with partial (left -> right) on
//     their shared domain left, yielding host -> right for every preserved id
//  6. coalesce: when two or more left ids were preserved onto the same
//     right id (partial is non-injective), collapse their matched host ids
//     into a single survivor, destroying the rest
//  7. add a fresh host id for every right id not in the range of the
//     (now-coalesced) gluing
//  8. reconnect: every right id's own From/To is re-laid down on the host
//     using the combined host<->right correspondence
//
// Returns the rewritten (cloned) host and the right -> host mapping.Mapping
// recording where every right-pattern id ended up, or ErrNoMatch if left
// does not occur in host, or ErrNoRewrite if partial references an id
// outside ids(left) or ids(right).
func Rewrite(host, left, right *core.Hypergraph, partial mapping.Mapping, opts ...Option) (*core.Hypergraph, mapping.Mapping, error) {
	if err := validatePartial(left, right, partial); err != nil {
		return nil, nil, err
	}

	m, err := NewMatcher(host, left, opts...)
	if err != nil {
		return nil, nil, err
	}
	found, ok := m.Next()
	if !ok {
		return nil, nil, ErrNoMatch
	}

	cloned := host.Clone()

	// Phase 4: delete every matched left id with no image under partial.
	for _, lid := range left.Find("") {
		if _, preserved := partial[lid]; !preserved {
			cloned.Destroy(found[lid][0])
		}
	}

	// Phase 5: glue preserved ids. found and partial share domain left, so
	// Join(found, partial) is exactly host -> right for every preserved id.
	hostToRight := mapping.Join(found, partial)
	rightToHost := hostToRight.Invert()

	// Phase 6 (coalesce): a non-injective partial can preserve two distinct
	// left ids onto the same right id, so rightToHost[rid] may legitimately
	// hold more than one matched host id at this point — exactly the
	// "two FACT-OF edges into the same relation class" case. Collapse every
	// such group onto a single, deterministically chosen survivor (the
	// smallest host id) and destroy the rest; the survivor absorbs the
	// group's incidence in the reconnect phase below.
	for rid, hostIds := range rightToHost {
		if len(hostIds) <= 1 {
			continue
		}
		survivors := append([]core.UniqueId(nil), hostIds...)
		sort.Slice(survivors, func(i, j int) bool { return survivors[i] < survivors[j] })
		for _, extra := range survivors[1:] {
			cloned.Destroy(extra)
		}
		rightToHost[rid] = []core.UniqueId{survivors[0]}
	}

	// Phase 7: add a fresh host id for every right id with no preserved
	// host counterpart yet.
	for _, rid := range right.Find("") {
		if _, has := rightToHost[rid]; has {
			continue
		}
		newId := freshId(cloned, rid)
		if err := cloned.Create(newId, right.Get(rid).Label()); err != nil {
			return nil, nil, fmt.Errorf("match: rewrite add phase (%s): %w", rid, err)
		}
		rightToHost[rid] = []core.UniqueId{newId}
	}

	// Phase 8: reconnect every right id's own incidence onto its host id.
	for _, rid := range right.Find("") {
		hostIds, ok := rightToHost[rid]
		if !ok || len(hostIds) == 0 {
			return nil, nil, fmt.Errorf("%w: %s", ErrNoRewrite, rid)
		}
		hostId := hostIds[0]

		toIds, err := resolveAll(rightToHost, right.Get(rid).To)
		if err != nil {
			return nil, nil, err
		}
		fromIds, err := resolveAll(rightToHost, right.Get(rid).From)
		if err != nil {
			return nil, nil, err
		}
		if err := cloned.To([]core.UniqueId{hostId}, toIds); err != nil {
			return nil, nil, fmt.Errorf("match: rewrite reconnect To (%s): %w", rid, err)
		}
		if err := cloned.From([]core.UniqueId{hostId}, fromIds); err != nil {
			return nil, nil, fmt.Errorf("match: rewrite reconnect From (%s): %w", rid, err)
		}
	}

	return cloned, rightToHost, nil
}

// validatePartial rejects a partial morphism whose domain strays outside
// ids(left) or whose range strays outside ids(right); per §7 a partial map
// referencing unknown ids is a NoRewrite condition, not a silently ignored
// entry.
func validatePartial(left, right *core.Hypergraph, partial mapping.Mapping) error {
	leftIds := idSet(left.Find(""))
	rightIds := idSet(right.Find(""))
	for lid, rids := range partial {
		if !leftIds[lid] {
			return fmt.Errorf("%w: partial key %s is not in ids(left)", ErrNoRewrite, lid)
		}
		for _, rid := range rids {
			if !rightIds[rid] {
				return fmt.Errorf("%w: partial value %s is not in ids(right)", ErrNoRewrite, rid)
			}
		}
	}

	return nil
}

func idSet(ids []core.UniqueId) map[core.UniqueId]bool {
	set := make(map[core.UniqueId]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return set
}

func resolveAll(rightToHost mapping.Mapping, rids []core.UniqueId) ([]core.UniqueId, error) {
	out := make([]core.UniqueId, 0, len(rids))
	for _, rid := range rids {
		hostIds, ok := rightToHost[rid]
		if !ok || len(hostIds) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoRewrite, rid)
		}
		out = append(out, hostIds[0])
	}

	return out, nil
}

// freshId derives a host id for a newly added right-pattern id that does
// not collide with anything already present in cloned.
func freshId(cloned *core.Hypergraph, rid core.UniqueId) core.UniqueId {
	candidate := "new:" + rid
	for suffix := 0; cloned.Has(candidate); suffix++ {
		candidate = fmt.Sprintf("new:%s#%d", rid, suffix)
	}

	return candidate
}
