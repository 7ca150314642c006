// # internal/test/integration/pipeline_integration_test.go
package integration

import (
	"debug/elf"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symgraph/internal/elfobj"
	"symgraph/internal/elfobj/elfobjtest"
	"symgraph/internal/errdefs"
	"symgraph/internal/graph"
	"symgraph/internal/output"
	"symgraph/internal/parser"
	"symgraph/internal/resolver"
)

func writeObject(t *testing.T, dir, name string, syms []elfobjtest.Sym, withSymtab bool) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, elfobjtest.WriteObject(path, []byte{0xc3}, syms, withSymtab))
	return path
}

// Runs the full pipeline over real object files: one definer, one referencer,
// one reference to a symbol nobody defines, and one file with no symbol
// table at all.
func TestPipeline_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	paths := []string{
		writeObject(t, dir, "a.o", []elfobjtest.Sym{
			{Name: "foo", Bind: elf.STB_GLOBAL, Type: elf.STT_FUNC, Defined: true},
			{Name: "local_helper", Bind: elf.STB_LOCAL, Type: elf.STT_FUNC, Defined: true},
		}, true),
		writeObject(t, dir, "b.o", []elfobjtest.Sym{
			{Name: "foo", Bind: elf.STB_GLOBAL, Type: elf.STT_FUNC, Defined: false},
			{Name: "memcpy", Bind: elf.STB_GLOBAL, Type: elf.STT_FUNC, Defined: false},
		}, true),
		writeObject(t, dir, "stripped.o", nil, false),
	}

	source := elfobj.NewFileSource()
	res := resolver.NewResolver()

	var skipped []string
	for _, path := range paths {
		records, err := source.Load(path)
		if err != nil {
			require.True(t, errdefs.IsCode(err, errdefs.CodeMissingSymtab))
			skipped = append(skipped, filepath.Base(path))
			continue
		}
		res.AddFile(filepath.Base(path), parser.Classify(records))
	}

	require.Equal(t, []string{"stripped.o"}, skipped)

	// Local symbols never reach the global namespace.
	_, tracked := res.Lookup("local_helper")
	assert.False(t, tracked)

	g := graph.Assemble(res)

	assert.True(t, g.HasNode("a.o"))
	assert.True(t, g.HasNode("b.o"))
	assert.False(t, g.HasNode("stripped.o"))

	require.Len(t, g.Edges, 2)
	assert.Equal(t, graph.Edge{From: "b.o", Symbol: "foo", To: "a.o", Kind: parser.KindFunction}, g.Edges[0])
	assert.Equal(t, graph.Edge{From: "b.o", Symbol: "memcpy", To: graph.Unresolved, Kind: parser.KindFunction}, g.Edges[1])
	assert.Empty(t, res.Conflicts())

	dot, err := output.NewDOTGenerator(g).Generate()
	require.NoError(t, err)
	assert.Contains(t, dot, `"b.o" -> "a.o" [label="foo", color="red"]`)
	assert.NotContains(t, dot, "stripped.o")
}

func TestPipeline_ConflictsAcrossFiles(t *testing.T) {
	dir := t.TempDir()

	def := []elfobjtest.Sym{{Name: "bar", Bind: elf.STB_GLOBAL, Type: elf.STT_FUNC, Defined: true}}
	paths := []string{
		writeObject(t, dir, "x.o", def, true),
		writeObject(t, dir, "y.o", def, true),
		writeObject(t, dir, "z.o", def, true),
	}

	source := elfobj.NewFileSource()
	res := resolver.NewResolver()
	for _, path := range paths {
		records, err := source.Load(path)
		require.NoError(t, err)
		res.AddFile(filepath.Base(path), parser.Classify(records))
	}

	sym, ok := res.Lookup("bar")
	require.True(t, ok)
	assert.Equal(t, "x.o", sym.DefFile)

	require.Len(t, res.Conflicts(), 2)
	assert.Equal(t, resolver.Conflict{Symbol: "bar", File: "y.o", Definer: "x.o"}, res.Conflicts()[0])
	assert.Equal(t, resolver.Conflict{Symbol: "bar", File: "z.o", Definer: "x.o"}, res.Conflicts()[1])
}

func TestPipeline_IdempotentAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	paths := []string{
		writeObject(t, dir, "a.o", []elfobjtest.Sym{
			{Name: "foo", Bind: elf.STB_GLOBAL, Type: elf.STT_FUNC, Defined: true},
			{Name: "exit", Bind: elf.STB_GLOBAL, Type: elf.STT_FUNC, Defined: false},
		}, true),
		writeObject(t, dir, "b.o", []elfobjtest.Sym{
			{Name: "foo", Bind: elf.STB_GLOBAL, Type: elf.STT_FUNC, Defined: false},
		}, true),
	}

	run := func() string {
		source := elfobj.NewFileSource()
		res := resolver.NewResolver()
		for _, path := range paths {
			records, err := source.Load(path)
			require.NoError(t, err)
			res.AddFile(filepath.Base(path), parser.Classify(records))
		}
		tsv, err := output.NewTSVGenerator(graph.Assemble(res)).Generate()
		require.NoError(t, err)
		return tsv
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
	assert.Equal(t, 3, len(strings.Split(strings.TrimSpace(first), "\n"))) // header + 2 edges
}
