// # internal/output/tsv.go
package output

import (
	"fmt"
	"strings"

	"symgraph/internal/graph"
)

type TSVGenerator struct {
	graph *graph.Graph
}

func NewTSVGenerator(g *graph.Graph) *TSVGenerator {
	return &TSVGenerator{graph: g}
}

func (t *TSVGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("From\tSymbol\tTo\tKind\n")

	for _, e := range t.graph.Edges {
		buf.WriteString(fmt.Sprintf("%s\t%s\t%s\t%s\n",
			e.From, e.Symbol, e.To, e.Kind))
	}

	return buf.String(), nil
}
