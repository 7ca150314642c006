// # internal/output/dot.go
package output

import (
	"fmt"
	"strings"

	"symgraph/internal/graph"
	"symgraph/internal/parser"
)

type DOTGenerator struct {
	graph *graph.Graph
}

func NewDOTGenerator(g *graph.Graph) *DOTGenerator {
	return &DOTGenerator{graph: g}
}

func (d *DOTGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("digraph symbols {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=8];\n")
	buf.WriteString("  splines=polyline;\n")
	buf.WriteString("  overlap=false;\n\n")

	for _, node := range d.graph.Nodes {
		if node == graph.Unresolved {
			buf.WriteString(fmt.Sprintf("  \"%s\" [style=\"rounded,dashed\", color=\"grey\"];\n", node))
		} else {
			buf.WriteString(fmt.Sprintf("  \"%s\";\n", node))
		}
	}
	buf.WriteString("\n")

	for _, e := range d.graph.Edges {
		buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [label=\"%s\", color=\"%s\"];\n",
			e.From, e.To, e.Symbol, edgeColor(e.Kind)))
	}

	buf.WriteString("}\n")

	return buf.String(), nil
}

// Functions render red, data objects blue. Symbols of any other type have no
// distinguished presentation and fall back to a neutral grey.
func edgeColor(kind parser.SymbolKind) string {
	switch kind {
	case parser.KindFunction:
		return "red"
	case parser.KindObject:
		return "blue"
	default:
		return "grey"
	}
}
