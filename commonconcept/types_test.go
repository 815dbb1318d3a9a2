package commonconcept_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hgraph/commonconcept"
)

func TestNewCommonConceptGraph_InstallsReservedKinds(t *testing.T) {
	g := commonconcept.NewCommonConceptGraph()

	for _, id := range []string{
		commonconcept.FactOfID, commonconcept.SubrelOfID, commonconcept.IsAID,
		commonconcept.HasAID, commonconcept.PartOfID, commonconcept.ConnectsID,
		commonconcept.InstanceOfID,
	} {
		require.True(t, g.Has(id), "reserved relation-kind %s must exist", id)
	}
}

func TestNewCommonConceptGraph_FactOfSelfLoop(t *testing.T) {
	g := commonconcept.NewCommonConceptGraph()

	factOf := g.Get(commonconcept.FactOfID)
	require.Equal(t, []string{commonconcept.FactOfID}, factOf.From, "FACT-OF self-points in From")
	require.Equal(t, []string{commonconcept.FactOfID}, factOf.To, "FACT-OF self-points in To")
}
