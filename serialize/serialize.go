// Package serialize provides a stable, byte-deterministic textual encoding
// of a core.Hypergraph via gopkg.in/yaml.v3, and the two-pass loader that
// reconstructs one from that encoding.
//
// 🚀 What is hgraph/serialize?
//
//	Dump emits one record per edge, ids in sorted order, record keys in
//	lexicographic order (id, label, pointingFrom, pointingTo) — the same
//	Dump(g) always produces the same bytes, which makes diffs meaningful
//	and round-trips testable byte-for-byte.
//
//	Load runs two passes over the decoded records: pass one creates every
//	edge (so every id referenced later is guaranteed to exist), pass two
//	wires pointingFrom/pointingTo. A record referencing an id missing from
//	the whole document is a hard error — Load never silently drops a
//	reference.
package serialize

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hgraph/core"
)

// edgeRecord mirrors one Hyperedge. Field order is declared lexicographically
// (id, label, pointingFrom, pointingTo) so yaml.v3's struct-based encoder
// — which preserves declaration order — emits keys in that order without
// needing a custom MarshalYAML.
type edgeRecord struct {
	ID           core.UniqueId   `yaml:"id"`
	Label        string          `yaml:"label"`
	PointingFrom []core.UniqueId `yaml:"pointingFrom,omitempty"`
	PointingTo   []core.UniqueId `yaml:"pointingTo,omitempty"`
}

// Dump encodes g as a sorted-by-id sequence of edge records.
// Complexity: O(N log N) for the id sort, O(N) for the encode.
func Dump(g *core.Hypergraph) ([]byte, error) {
	ids := g.Find("")
	records := make([]edgeRecord, 0, len(ids))
	for _, id := range ids {
		e := g.Get(id)
		records = append(records, edgeRecord{
			ID:           e.ID,
			Label:        e.Label(),
			PointingFrom: e.From,
			PointingTo:   e.To,
		})
	}

	out, err := yaml.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("serialize: marshal: %w", err)
	}

	return out, nil
}

// Load decodes data into a freshly constructed Hypergraph via a two-pass
// procedure: pass one creates every edge (ErrDuplicateID/ErrEmptyID abort
// the whole load), pass two wires pointingFrom/pointingTo
// (ErrMissingReference aborts the whole load — no partial graph is
// returned on error).
// Complexity: O(N) records times O(deg) per incidence-set write.
func Load(data []byte) (*core.Hypergraph, error) {
	var records []edgeRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("serialize: unmarshal: %w", err)
	}

	h := core.NewHypergraph()
	for _, r := range records {
		if err := h.Create(r.ID, r.Label); err != nil {
			return nil, fmt.Errorf("serialize: load pass 1 (%s): %w", r.ID, err)
		}
	}
	for _, r := range records {
		if err := h.From([]core.UniqueId{r.ID}, r.PointingFrom); err != nil {
			return nil, fmt.Errorf("serialize: load pass 2 from (%s): %w", r.ID, err)
		}
		if err := h.To([]core.UniqueId{r.ID}, r.PointingTo); err != nil {
			return nil, fmt.Errorf("serialize: load pass 2 to (%s): %w", r.ID, err)
		}
	}

	return h, nil
}
