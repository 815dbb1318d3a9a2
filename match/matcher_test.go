package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hgraph/core"
	"github.com/katalvlaran/hgraph/match"
)

func buildChainHost(t *testing.T) *core.Hypergraph {
	t.Helper()
	h := core.NewHypergraph()
	require.NoError(t, h.Create("a", "V"))
	require.NoError(t, h.Create("b", "V"))
	require.NoError(t, h.Create("c", "V"))
	require.NoError(t, h.Create("r1", "E"))
	require.NoError(t, h.From([]string{"r1"}, []string{"a"}))
	require.NoError(t, h.To([]string{"r1"}, []string{"b"}))
	require.NoError(t, h.Create("r2", "E"))
	require.NoError(t, h.From([]string{"r2"}, []string{"b"}))
	require.NoError(t, h.To([]string{"r2"}, []string{"c"}))

	return h
}

func buildSingleEdgeQuery(t *testing.T) *core.Hypergraph {
	t.Helper()
	q := core.NewHypergraph()
	require.NoError(t, q.Create("x", "V"))
	require.NoError(t, q.Create("y", "V"))
	require.NoError(t, q.Create("qr", "E"))
	require.NoError(t, q.From([]string{"qr"}, []string{"x"}))
	require.NoError(t, q.To([]string{"qr"}, []string{"y"}))

	return q
}

func TestMatcher_FindsBothEdges(t *testing.T) {
	host := buildChainHost(t)
	query := buildSingleEdgeQuery(t)

	m, err := match.NewMatcher(host, query)
	require.NoError(t, err)

	var relationMatches []string
	for i := 0; i < 2; i++ {
		got, ok := m.Next()
		require.True(t, ok, "expected a match on attempt %d", i+1)
		relationMatches = append(relationMatches, got["qr"][0])
	}

	require.ElementsMatch(t, []string{"r1", "r2"}, relationMatches)

	_, ok := m.Next()
	require.False(t, ok, "search must exhaust after both edges are found")
}

func TestMatcher_NoMatchForUnseenLabel(t *testing.T) {
	host := buildChainHost(t)
	query := core.NewHypergraph()
	require.NoError(t, query.Create("z", "Ghost"))

	m, err := match.NewMatcher(host, query)
	require.NoError(t, err)

	_, ok := m.Next()
	require.False(t, ok)
}

func TestMatcher_EmptyQueryMatchesOnceWithEmptyMapping(t *testing.T) {
	host := buildChainHost(t)
	query := core.NewHypergraph()

	m, err := match.NewMatcher(host, query)
	require.NoError(t, err)

	got, ok := m.Next()
	require.True(t, ok)
	require.Empty(t, got)

	_, ok = m.Next()
	require.False(t, ok)
}

func TestNewMatcher_RejectsNilPredicate(t *testing.T) {
	host, query := buildChainHost(t), buildSingleEdgeQuery(t)

	_, err := match.NewMatcher(host, query, match.WithCandidatePredicate(nil))
	require.ErrorIs(t, err, match.ErrNilPredicate)
}

func TestNewMatcher_RejectsNegativeSearchLimit(t *testing.T) {
	host, query := buildChainHost(t), buildSingleEdgeQuery(t)

	_, err := match.NewMatcher(host, query, match.WithSearchLimit(-1))
	require.ErrorIs(t, err, match.ErrNegativeLimit)
}
