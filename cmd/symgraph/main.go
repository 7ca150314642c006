// # cmd/symgraph/main.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"symgraph/internal/config"
	"symgraph/internal/watcher"
)

var (
	configPath = flag.String("config", "./symgraph.toml", "Path to config file")
	watch      = flag.Bool("watch", false, "Re-run the analysis when input files change")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Print version and exit")
)

const VERSION = "1.0.0"

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("symgraph v%s\n", VERSION)
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: symgraph [flags] file.o [file2.o ...]")
		os.Exit(2)
	}

	// Load config; a missing config file is fine, defaults apply.
	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	app, err := NewApp(cfg, flag.Args())
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	result := app.Analyze()
	app.WriteOutputs(result)
	app.PrintSummary(result)

	if !*watch {
		if cfg.StrictConflicts && len(result.Conflicts) > 0 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	if cfg.Metrics.Listen != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Listen, nil); err != nil {
				slog.Error("metrics endpoint failed", "error", err)
			}
		}()
	}

	w, err := watcher.NewWatcher(cfg.Watch.Debounce, cfg.Exclude.Files, func(changed []string) {
		slog.Info("input changed, re-analyzing", "files", len(changed))
		r := app.Analyze()
		app.WriteOutputs(r)
		app.PrintSummary(r)
	})
	if err != nil {
		slog.Error("failed to create watcher", "error", err)
		os.Exit(1)
	}
	defer w.Close()

	if err := w.Watch(flag.Args()); err != nil {
		slog.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}

	// Block forever
	select {}
}
