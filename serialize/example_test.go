package serialize_test

import (
	"fmt"

	"github.com/katalvlaran/hgraph/core"
	"github.com/katalvlaran/hgraph/serialize"
)

func ExampleDump() {
	h := core.NewHypergraph()
	_ = h.Create("1", "A")
	_ = h.Create("2", "B")
	_ = h.To([]string{"1"}, []string{"2"})

	out, _ := serialize.Dump(h)
	loaded, _ := serialize.Load(out)

	fmt.Println(loaded.Find(""))
	fmt.Println(loaded.Get("1").To)
	// Output:
	// [1 2]
	// [2]
}
