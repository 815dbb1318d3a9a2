package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hgraph/core"
)

func TestUniteIntersectSubtract(t *testing.T) {
	a := []string{"1", "2", "3"}
	b := []string{"2", "3", "4"}

	require.Equal(t, []string{"1", "2", "3", "4"}, core.Unite(a, b))
	require.Equal(t, []string{"2", "3"}, core.Intersect(a, b))
	require.Equal(t, []string{"1"}, core.Subtract(a, b))
}

func TestUnion_AWinsOnLabelConflict(t *testing.T) {
	a := core.NewHypergraph()
	require.NoError(t, a.Create("1", "A"))
	require.NoError(t, a.Create("2", "B"))
	require.NoError(t, a.To([]string{"1"}, []string{"2"}))

	b := core.NewHypergraph()
	require.NoError(t, b.Create("1", "DIFFERENT"))
	require.NoError(t, b.Create("3", "C"))
	require.NoError(t, b.To([]string{"1"}, []string{"3"}))

	u := core.Union(a, b)

	require.Equal(t, "A", u.Get("1").Label(), "A's label wins on conflict")
	require.ElementsMatch(t, []string{"2", "3"}, u.Get("1").To, "incidence sets are unioned")
	require.True(t, u.Has("2"))
	require.True(t, u.Has("3"))
	require.False(t, a.Has("3"), "Union must not mutate its arguments")
}

func TestImportFrom_UnitesIncidenceOnConflict(t *testing.T) {
	h := core.NewHypergraph()
	require.NoError(t, h.Create("1", "A"))
	require.NoError(t, h.Create("2", "B"))
	require.NoError(t, h.To([]string{"1"}, []string{"2"}))

	other := core.NewHypergraph()
	require.NoError(t, other.Create("1", "A"))
	require.NoError(t, other.Create("3", "C"))
	require.NoError(t, other.To([]string{"1"}, []string{"3"}))

	h.ImportFrom(other)

	require.ElementsMatch(t, []string{"2", "3"}, h.Get("1").To)
	require.True(t, h.Has("3"))
}
