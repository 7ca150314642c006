// # internal/graph/graph.go
package graph

import (
	"symgraph/internal/observability"
	"symgraph/internal/parser"
	"symgraph/internal/resolver"
)

// Unresolved is the sentinel destination for references whose definer is not
// among the analyzed files (libc and friends).
const Unresolved = "<unresolved>"

// Edge is one file-to-file dependency, labeled by the symbol that causes it.
// Edges are not deduplicated: each referencing file contributes its own edge,
// and a file may legally depend on itself.
type Edge struct {
	From   string
	Symbol string
	To     string
	Kind   parser.SymbolKind
}

// Graph is the assembled dependency multigraph. It is constructed once from
// a finished resolver and read-only afterwards.
type Graph struct {
	Nodes []string
	Edges []Edge

	nodeSet map[string]bool
}

// Assemble derives the dependency graph from the resolver's symbol and file
// tables. The node set is every analyzed file plus the unresolved sentinel;
// one edge is emitted per (referencing file, symbol) pair.
func Assemble(r *resolver.Resolver) *Graph {
	g := &Graph{nodeSet: make(map[string]bool)}

	for _, file := range r.Files() {
		g.addNode(file.Name)
	}
	g.addNode(Unresolved)

	for _, sym := range r.Symbols() {
		dest := sym.DefFile
		if dest == "" {
			dest = Unresolved
		}
		for _, ref := range sym.RefFiles {
			g.Edges = append(g.Edges, Edge{
				From:   ref,
				Symbol: sym.Name,
				To:     dest,
				Kind:   sym.Kind,
			})
		}
	}

	observability.GraphNodes.Set(float64(len(g.Nodes)))
	observability.GraphEdges.Set(float64(len(g.Edges)))
	return g
}

func (g *Graph) addNode(name string) {
	if g.nodeSet[name] {
		return
	}
	g.nodeSet[name] = true
	g.Nodes = append(g.Nodes, name)
}

// HasNode reports whether name is part of the node set.
func (g *Graph) HasNode(name string) bool {
	return g.nodeSet[name]
}
