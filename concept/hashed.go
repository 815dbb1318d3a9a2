// File: hashed.go
// Role: Hash-as-id convenience for callers that want a deterministic id
// derived from a relation's shape instead of choosing one themselves.
// Computing id = FNV-1a(fromLabels || toLabels || label) lets callers build
// relations without minting their own ids, at the cost of collisions being
// possible for distinct relations sharing the same label signature — callers
// who need guaranteed uniqueness should mint their own ids via Relate.

package concept

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/katalvlaran/hgraph/core"
)

// RelateHashed behaves exactly like Relate, except the new relation's id is
// derived deterministically from fromLabels, toLabels and label via 64-bit
// FNV-1a, rather than supplied by the caller.
// Complexity: O(len(fromIds) + len(toIds) + len(fromLabels) + len(toLabels)).
func (c *Conceptgraph) RelateHashed(fromIds, toIds []core.UniqueId, fromLabels, toLabels []string, label string) (core.UniqueId, error) {
	id := hashRelation(fromLabels, toLabels, label)
	if err := c.Relate(id, fromIds, toIds, label); err != nil {
		return "", err
	}

	return id, nil
}

func hashRelation(fromLabels, toLabels []string, label string) core.UniqueId {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(fromLabels, ",")))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strings.Join(toLabels, ",")))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(label))

	return core.UniqueId(strconv.FormatUint(h.Sum64(), 16))
}
