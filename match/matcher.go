// File: matcher.go
// Role: The backtracking subgraph-isomorphism search itself. Query
// ids are assigned to host ids in canonical (sorted) order; at each level a
// precomputed, predicate-filtered candidate list is tried in order, with
// edge-consistency checked against every already-assigned pair before a
// candidate is committed.

package match

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/hgraph/core"
	"github.com/katalvlaran/hgraph/mapping"
)

// DefaultCandidatePredicate implements the default rule: if queryId exists
// verbatim as a host id, that id is the sole candidate; otherwise candidates
// are every host id sharing the query id's label, filtered by degree — the
// host id's own in/out arity must be at least the query id's, since a host
// may have more structure than the pattern asks for, never less. This
// mirrors the degree-filtering step of classic VF2-style matchers, adapted
// to hyperedge in/out incidence-set sizes.
func DefaultCandidatePredicate(host *core.Hypergraph, hostId core.UniqueId, query *core.Hypergraph, queryId core.UniqueId) bool {
	qe := query.Get(queryId)
	if qe == nil {
		return false
	}
	if host.Has(queryId) {
		return hostId == queryId
	}

	he := host.Get(hostId)
	if he == nil {
		return false
	}
	if qe.Label() != "" && qe.Label() != he.Label() {
		return false
	}

	return len(he.From) >= len(qe.From) && len(he.To) >= len(qe.To)
}

// NewMatcher prepares a Matcher that will enumerate matches of query inside
// host. The host and query graphs are read but never mutated by the
// Matcher.
func NewMatcher(host, query *core.Hypergraph, opts ...Option) (*Matcher, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.err != nil {
		return nil, o.err
	}

	order := query.Find("")
	sort.Strings(order) // canonical query-id iteration order

	return &Matcher{
		host:        host,
		query:       query,
		queryOrder:  order,
		predicate:   o.candidatePredicate,
		searchLimit: o.searchLimit,
		logger:      o.logger,
		assignment:  make(map[core.UniqueId]core.UniqueId, len(order)),
		usedHost:    make(map[core.UniqueId]bool, len(order)),
	}, nil
}

// Next advances the search and returns the next match as a mapping.Mapping
// keyed by query id (one host id per query id), or false once every match
// has been enumerated. An empty query graph matches once, trivially, with
// an empty mapping.
// Complexity: worst case O(H^Q) candidate trials; bounded by WithSearchLimit.
func (m *Matcher) Next() (mapping.Mapping, bool) {
	if m.exhausted {
		return nil, false
	}
	if len(m.queryOrder) == 0 {
		if !m.started {
			m.started = true

			return mapping.Mapping{}, true
		}
		m.exhausted = true

		return nil, false
	}
	if !m.started {
		m.started = true
		m.pushFrame(0)
	}

	for {
		if len(m.stack) == 0 {
			m.exhausted = true

			return nil, false
		}
		top := &m.stack[len(m.stack)-1]

		if top.assignedHostId != "" {
			delete(m.assignment, top.queryId)
			delete(m.usedHost, top.assignedHostId)
			top.assignedHostId = ""
		}

		if m.searchLimit >= 0 && m.steps >= m.searchLimit {
			m.exhausted = true

			return nil, false
		}

		if top.idx >= len(top.candidates) {
			m.stack = m.stack[:len(m.stack)-1]

			continue
		}

		cand := top.candidates[top.idx]
		top.idx++
		m.steps++

		if m.usedHost[cand] || !m.isConsistent(top.queryId, cand) {
			continue
		}

		m.assignment[top.queryId] = cand
		m.usedHost[cand] = true
		top.assignedHostId = cand
		m.logger.Debug("committed candidate", zap.String("queryId", top.queryId), zap.String("hostId", cand), zap.Int("depth", len(m.stack)))

		if len(m.stack) == len(m.queryOrder) {
			return m.snapshot(), true
		}

		m.pushFrame(len(m.stack))
	}
}

func (m *Matcher) pushFrame(level int) {
	queryId := m.queryOrder[level]
	candidates := make([]core.UniqueId, 0)
	for _, hostId := range m.host.Find("") {
		if m.predicate(m.host, hostId, m.query, queryId) {
			candidates = append(candidates, hostId)
		}
	}
	m.stack = append(m.stack, frame{queryId: queryId, candidates: candidates})
}

// isConsistent checks that assigning cand to queryId keeps every
// already-assigned query id's own incidence structure faithfully mirrored
// on the host side, in both directions.
func (m *Matcher) isConsistent(queryId, cand core.UniqueId) bool {
	qe := m.query.Get(queryId)
	he := m.host.Get(cand)

	for otherQ, otherH := range m.assignment {
		oqe := m.query.Get(otherQ)

		if containsID(oqe.To, queryId) && !containsID(m.host.Get(otherH).To, cand) {
			return false
		}
		if containsID(oqe.From, queryId) && !containsID(m.host.Get(otherH).From, cand) {
			return false
		}
		if containsID(qe.To, otherQ) && !containsID(he.To, otherH) {
			return false
		}
		if containsID(qe.From, otherQ) && !containsID(he.From, otherH) {
			return false
		}
	}

	return true
}

func (m *Matcher) snapshot() mapping.Mapping {
	out := make(mapping.Mapping, len(m.assignment))
	for k, v := range m.assignment {
		out[k] = []core.UniqueId{v}
	}

	return out
}

func containsID(set []core.UniqueId, v core.UniqueId) bool {
	for _, existing := range set {
		if existing == v {
			return true
		}
	}

	return false
}
