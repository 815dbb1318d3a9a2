package commonconcept_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hgraph/commonconcept"
	"github.com/katalvlaran/hgraph/core"
)

func newTaxonomy(t *testing.T) *commonconcept.CommonConceptGraph {
	t.Helper()
	g := commonconcept.NewCommonConceptGraph()
	for id, label := range map[string]string{
		"object":  "Object",
		"animal":  "Animal",
		"dog":     "Dog",
		"vehicle": "Vehicle",
		"car":     "Car",
	} {
		require.NoError(t, g.CreateConcept(id, label))
	}
	require.NoError(t, g.IsA("r-animal-object", "w-animal-object", "animal", "object"))
	require.NoError(t, g.IsA("r-dog-animal", "w-dog-animal", "dog", "animal"))
	require.NoError(t, g.IsA("r-vehicle-object", "w-vehicle-object", "vehicle", "object"))
	require.NoError(t, g.IsA("r-car-vehicle", "w-car-vehicle", "car", "vehicle"))

	return g
}

func TestSubclassesOf_Transitive(t *testing.T) {
	g := newTaxonomy(t)

	require.ElementsMatch(t, []string{"object", "animal", "dog", "vehicle", "car"}, g.SubclassesOf("object"))
	require.ElementsMatch(t, []string{"animal", "dog"}, g.SubclassesOf("animal"))
}

func TestSuperclassesOf_Transitive(t *testing.T) {
	g := newTaxonomy(t)

	require.ElementsMatch(t, []string{"dog", "animal", "object"}, g.SuperclassesOf("dog"))
}

func TestChildrenOf_NonTransitive(t *testing.T) {
	g := newTaxonomy(t)

	require.ElementsMatch(t, []string{"animal", "vehicle"}, g.ChildrenOf("object"))
}

func TestPartsOf_Transitive(t *testing.T) {
	g := commonconcept.NewCommonConceptGraph()
	require.NoError(t, g.CreateConcept("car", "Car"))
	require.NoError(t, g.CreateConcept("engine", "Engine"))
	require.NoError(t, g.CreateConcept("piston", "Piston"))
	require.NoError(t, g.PartOf("r1", "w1", "engine", "car"))
	require.NoError(t, g.PartOf("r2", "w2", "piston", "engine"))

	require.ElementsMatch(t, []string{"car", "engine", "piston"}, g.PartsOf("car"))
}

func TestFactOf_NonTransitive(t *testing.T) {
	g := commonconcept.NewCommonConceptGraph()
	require.NoError(t, g.CreateConcept("rex", "Dog"))
	require.NoError(t, g.CreateConcept("barking", "Barking"))
	// rex is treated as the fact's own subject id here, directly witnessed
	// as a fact of "barking" (a 0-ary-style fact: the witnessed id need not
	// itself be a from/to-bearing relation).
	require.NoError(t, g.FactOf("r1", "rex", "barking"))

	require.Equal(t, []string{"rex"}, g.FactsOf("barking", ""))
	require.Equal(t, []string{"rex"}, g.FactsOf("barking", "Dog"))
	require.Empty(t, g.FactsOf("barking", "Cat"))
}

func TestFactOf_BinaryRelationInstance(t *testing.T) {
	g := commonconcept.NewCommonConceptGraph()
	require.NoError(t, g.CreateConcept("alice", "Person"))
	require.NoError(t, g.CreateConcept("bob", "Person"))
	require.NoError(t, g.CreateConcept("love", "love"))
	require.NoError(t, g.Relate("alice-loves-bob", []string{"alice"}, []string{"bob"}, "love"))
	require.NoError(t, g.FactOf("w1", "alice-loves-bob", "love"))

	facts := g.FactsOf("love", "")
	require.Equal(t, []string{"alice-loves-bob"}, facts)

	fact := g.Get(facts[0])
	require.Equal(t, []string{"alice"}, fact.From)
	require.Equal(t, []string{"bob"}, fact.To)
}

func TestInstantiateFrom_InstanceOfQueries(t *testing.T) {
	g := commonconcept.NewCommonConceptGraph()
	require.NoError(t, g.CreateConcept("dog", "Dog"))

	require.NoError(t, g.InstantiateFrom("rex", "Rex", "r1", "w1", "dog"))

	require.Equal(t, []string{"rex"}, g.InstancesOf("dog"))
	require.Equal(t, []string{"dog"}, g.ClassesOf("rex"))
}

func TestSubrelationOf_Transitive(t *testing.T) {
	g := commonconcept.NewCommonConceptGraph()
	require.NoError(t, g.CreateConcept("c1", "C1"))
	require.NoError(t, g.CreateConcept("c2", "C2"))
	require.NoError(t, g.Relate("loves", []string{"c1"}, []string{"c2"}, "LOVES"))
	require.NoError(t, g.Relate("likes", []string{"c1"}, []string{"c2"}, "LIKES"))
	require.NoError(t, g.Relate("feels", []string{"c1"}, []string{"c2"}, "FEELS"))
	require.NoError(t, g.SubrelationOf("r1", "w1", "loves", "likes"))
	require.NoError(t, g.SubrelationOf("r2", "w2", "likes", "feels"))

	require.ElementsMatch(t, []string{"loves", "likes", "feels"}, g.SubrelationsOf("feels"))
}

func TestTransitiveClosure_FollowsSubrelationLabelCover(t *testing.T) {
	g := commonconcept.NewCommonConceptGraph()
	require.NoError(t, g.CreateConcept("alice", "Person"))
	require.NoError(t, g.CreateConcept("bob", "Person"))
	require.NoError(t, g.CreateConcept("love", "love"))
	require.NoError(t, g.CreateConcept("like", "like"))
	require.NoError(t, g.SubrelationOf("r-love-like", "w-love-like", "love", "like"))
	require.NoError(t, g.Relate("alice-loves-bob", []string{"alice"}, []string{"bob"}, "love"))

	require.ElementsMatch(t, []string{"alice", "bob"}, g.TransitiveClosure("alice", "like", "", core.Down))
}

func TestRelateFrom_MissingClass(t *testing.T) {
	g := commonconcept.NewCommonConceptGraph()
	require.NoError(t, g.CreateConcept("a", "A"))
	require.NoError(t, g.CreateConcept("b", "B"))

	err := g.RelateFrom("r1", "w1", []string{"a"}, []string{"b"}, "X", "ghost-kind")
	require.ErrorIs(t, err, core.ErrMissingReference)
}

func TestRelateFrom_ArbitraryUserDefinedClass(t *testing.T) {
	// classId need not be one of the seven reserved ur-edges: any existing
	// relation the caller declared works, exactly the mechanism scenario 3
	// of the specification relies on (facts of a user-defined "love" class).
	g := commonconcept.NewCommonConceptGraph()
	require.NoError(t, g.CreateConcept("alice", "Person"))
	require.NoError(t, g.CreateConcept("bob", "Person"))
	require.NoError(t, g.CreateConcept("love", "love"))

	require.NoError(t, g.RelateFrom("alice-loves-bob", "w1", []string{"alice"}, []string{"bob"}, "love", "love"))

	require.Equal(t, []string{"alice-loves-bob"}, g.FactsOf("love", ""))
}
