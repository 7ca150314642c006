// # cmd/symgraph/app.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gobwas/glob"

	"symgraph/internal/config"
	"symgraph/internal/elfobj"
	"symgraph/internal/errdefs"
	"symgraph/internal/graph"
	"symgraph/internal/observability"
	"symgraph/internal/output"
	"symgraph/internal/parser"
	"symgraph/internal/resolver"
)

type App struct {
	cfg     *config.Config
	source  elfobj.Source
	cache   *parser.Cache
	paths   []string // input order is significant
	exclude []glob.Glob
}

// Result of one full analysis pass.
type Result struct {
	Graph     *graph.Graph
	Conflicts []resolver.Conflict
	Files     int // files that contributed symbols
	Skipped   int // files dropped due to per-file errors
	Symbols   int
}

func NewApp(cfg *config.Config, paths []string) (*App, error) {
	cache, err := parser.NewCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:    cfg,
		source: elfobj.NewFileSource(),
		cache:  cache,
	}

	for _, pattern := range cfg.Exclude.Files {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errdefs.Wrap(err, errdefs.CodeValidationError, "bad exclude pattern "+pattern)
		}
		a.exclude = append(a.exclude, g)
	}

	for _, path := range paths {
		if a.excluded(path) {
			slog.Debug("excluded by pattern", "path", path)
			continue
		}
		a.paths = append(a.paths, path)
	}
	if len(a.paths) == 0 {
		return nil, errdefs.New(errdefs.CodeValidationError, "no object files left after exclusions")
	}

	return a, nil
}

func (a *App) excluded(path string) bool {
	base := filepath.Base(path)
	for _, g := range a.exclude {
		if g.Match(base) {
			return true
		}
	}
	return false
}

// Analyze runs the full pipeline over the configured file list, strictly in
// input order. Per-file errors skip that file and are reported to stderr;
// they never abort the run.
func (a *App) Analyze() *Result {
	res := resolver.NewResolver()
	res.OnConflict = func(c resolver.Conflict) {
		fmt.Fprintf(os.Stderr, "symbol %s in %s is already defined by file %s\n",
			c.Symbol, c.File, c.Definer)
	}

	files := 0
	skipped := 0
	for _, path := range a.paths {
		obs, err := a.classifyFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
			observability.FilesSkipped.Inc()
			skipped++
			continue
		}
		res.AddFile(filepath.Base(path), obs)
		observability.FilesProcessed.Inc()
		files++
	}

	g := graph.Assemble(res)
	return &Result{
		Graph:     g,
		Conflicts: res.Conflicts(),
		Files:     files,
		Skipped:   skipped,
		Symbols:   len(res.Symbols()),
	}
}

func (a *App) classifyFile(path string) ([]parser.Observation, error) {
	if obs, ok := a.cache.Get(path); ok {
		slog.Debug("cache hit", "path", path)
		return obs, nil
	}

	start := time.Now()
	records, err := a.source.Load(path)
	if err != nil {
		return nil, err
	}
	obs := parser.Classify(records)
	observability.ParseDuration.Observe(time.Since(start).Seconds())

	a.cache.Put(path, obs)
	return obs, nil
}

// WriteOutputs emits the configured artifacts for a finished analysis. Export
// failures are warnings; the analysis itself stands.
func (a *App) WriteOutputs(r *Result) {
	dot, _ := output.NewDOTGenerator(r.Graph).Generate()

	if a.cfg.Output.DOT != "" {
		if err := os.WriteFile(a.cfg.Output.DOT, []byte(dot), 0o644); err != nil {
			slog.Warn("failed to write dot output", "path", a.cfg.Output.DOT, "error", err)
		}
	}

	if a.cfg.Output.TSV != "" {
		tsv, _ := output.NewTSVGenerator(r.Graph).Generate()
		if err := os.WriteFile(a.cfg.Output.TSV, []byte(tsv), 0o644); err != nil {
			slog.Warn("failed to write tsv output", "path", a.cfg.Output.TSV, "error", err)
		}
	}

	renderer := output.NewRenderer(a.cfg.Output.RenderDir)
	if err := renderer.Render("symbols", dot); err != nil {
		slog.Warn("graph render failed", "error", err)
	}
}

func (a *App) PrintSummary(r *Result) {
	fmt.Printf("Analyzed %d files (%d skipped): %d symbols, %d nodes, %d edges, %d conflicts\n",
		r.Files, r.Skipped, r.Symbols, len(r.Graph.Nodes), len(r.Graph.Edges), len(r.Conflicts))
}
