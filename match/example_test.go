package match_test

import (
	"fmt"

	"github.com/katalvlaran/hgraph/core"
	"github.com/katalvlaran/hgraph/match"
)

func ExampleMatcher_Next() {
	host := core.NewHypergraph()
	_ = host.Create("a", "V")
	_ = host.Create("b", "V")
	_ = host.Create("r1", "E")
	_ = host.From([]string{"r1"}, []string{"a"})
	_ = host.To([]string{"r1"}, []string{"b"})

	query := core.NewHypergraph()
	_ = query.Create("x", "V")
	_ = query.Create("y", "V")
	_ = query.Create("qr", "E")
	_ = query.From([]string{"qr"}, []string{"x"})
	_ = query.To([]string{"qr"}, []string{"y"})

	m, _ := match.NewMatcher(host, query)
	got, ok := m.Next()
	fmt.Println(ok, got["qr"][0])
	// Output: true r1
}
