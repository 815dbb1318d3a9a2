// File: types.go
// Role: Matcher configuration (functional options, teacher idiom) and the
// sentinel errors of the match package.

package match

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/hgraph/core"
)

// Sentinel errors.
var (
	// ErrNilPredicate is recorded by WithCandidatePredicate(nil).
	ErrNilPredicate = errors.New("match: candidate predicate must not be nil")
	// ErrNegativeLimit is recorded by WithSearchLimit with a negative n.
	ErrNegativeLimit = errors.New("match: search limit must be >= 0")
	// ErrNilLogger is recorded by WithLogger(nil).
	ErrNilLogger = errors.New("match: logger must not be nil")
	// ErrNoMatch is returned by Rewrite when no match for the left pattern
	// exists in the host.
	ErrNoMatch = errors.New("match: no match for left pattern found in host")
	// ErrNoRewrite is returned by Rewrite when the partial morphism has a key
	// outside ids(left) or a value outside ids(right), or when a right-pattern
	// id is left with no host counterpart during reconnection.
	ErrNoRewrite = errors.New("match: right-pattern id could not be resolved to a host id")
)

// CandidatePredicate decides whether hostId is structurally eligible to
// stand in for queryId, before backtracking checks edge consistency. See
// DefaultCandidatePredicate.
type CandidatePredicate func(host *core.Hypergraph, hostId core.UniqueId, query *core.Hypergraph, queryId core.UniqueId) bool

// Options configures a Matcher. Its fields are unexported; it is built via
// functional Options and read once by NewMatcher.
type Options struct {
	candidatePredicate CandidatePredicate
	searchLimit        int // -1 means unlimited
	logger             *zap.Logger
	err                error
}

// Option configures a Matcher. Invalid options are recorded rather than
// applied; NewMatcher surfaces the first recorded error.
type Option func(*Options)

// DefaultOptions returns the Options NewMatcher uses when no Option is
// supplied: DefaultCandidatePredicate, no search limit, no logger.
func DefaultOptions() *Options {
	return &Options{
		candidatePredicate: DefaultCandidatePredicate,
		searchLimit:        -1,
		logger:             zap.NewNop(),
	}
}

// WithCandidatePredicate overrides the default indegree/outdegree/label
// candidate filter.
func WithCandidatePredicate(p CandidatePredicate) Option {
	return func(o *Options) {
		if p == nil {
			o.err = ErrNilPredicate

			return
		}
		o.candidatePredicate = p
	}
}

// WithSearchLimit bounds the number of candidate trials Next() will attempt
// across the whole search before reporting exhaustion; n must be >= 0.
func WithSearchLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrNegativeLimit

			return
		}
		o.searchLimit = n
	}
}

// WithLogger attaches a zap logger the Matcher uses to report backtracking
// progress at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = ErrNilLogger

			return
		}
		o.logger = l
	}
}

// frame is one level of the backtracking search stack: the query id being
// assigned, its precomputed candidate host ids, the next candidate to try,
// and the host id currently committed at this level (empty if none).
type frame struct {
	queryId        core.UniqueId
	candidates     []core.UniqueId
	idx            int
	assignedHostId core.UniqueId
}

// Matcher enumerates subgraph-isomorphism matches of query within host, one
// at a time, via Next(). The search stack is the only stateful object
// across calls — Next() resumes backtracking exactly where the previous
// call left off.
type Matcher struct {
	host  *core.Hypergraph
	query *core.Hypergraph

	queryOrder  []core.UniqueId
	predicate   CandidatePredicate
	searchLimit int
	logger      *zap.Logger

	stack      []frame
	assignment map[core.UniqueId]core.UniqueId
	usedHost   map[core.UniqueId]bool

	started   bool
	exhausted bool
	steps     int
}
