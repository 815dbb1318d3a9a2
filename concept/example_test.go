package concept_test

import (
	"fmt"

	"github.com/katalvlaran/hgraph/concept"
)

func ExampleConceptgraph_Relate() {
	c := concept.NewConceptgraph()
	_ = c.CreateConcept("alice", "Person")
	_ = c.CreateConcept("acme", "Company")
	_ = c.Relate("r1", []string{"alice"}, []string{"acme"}, "WORKS_AT")

	fmt.Println(c.Relations("WORKS_AT"))
	// Output: [r1]
}
