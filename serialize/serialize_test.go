package serialize_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hgraph/core"
	"github.com/katalvlaran/hgraph/serialize"
)

func TestRoundTrip(t *testing.T) {
	h := core.NewHypergraph()
	require.NoError(t, h.Create("1", "A"))
	require.NoError(t, h.Create("2", "B"))
	require.NoError(t, h.To([]string{"1"}, []string{"2"}))

	out, err := serialize.Dump(h)
	require.NoError(t, err)

	loaded, err := serialize.Load(out)
	require.NoError(t, err)

	require.ElementsMatch(t, h.Find(""), loaded.Find(""))
	require.Equal(t, h.Get("1").To, loaded.Get("1").To)
	require.Equal(t, h.Get("2").From, loaded.Get("2").From)
}

func TestDump_IsByteStable(t *testing.T) {
	build := func() *core.Hypergraph {
		h := core.NewHypergraph()
		_ = h.Create("2", "B")
		_ = h.Create("1", "A")
		_ = h.To([]string{"1"}, []string{"2"})

		return h
	}

	out1, err := serialize.Dump(build())
	require.NoError(t, err)
	out2, err := serialize.Dump(build())
	require.NoError(t, err)

	require.Equal(t, out1, out2)
}

func TestLoad_MissingReferenceIsHardError(t *testing.T) {
	data := []byte("- id: \"1\"\n  label: A\n  pointingTo: [\"ghost\"]\n")

	_, err := serialize.Load(data)
	require.True(t, errors.Is(err, core.ErrMissingReference))
}

func TestLoad_DuplicateIdDifferentLabelIsHardError(t *testing.T) {
	data := []byte("- id: \"1\"\n  label: A\n- id: \"1\"\n  label: B\n")

	_, err := serialize.Load(data)
	require.True(t, errors.Is(err, core.ErrDuplicateID))
}
