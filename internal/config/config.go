// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	StrictConflicts bool    `toml:"strict_conflicts"`
	Exclude         Exclude `toml:"exclude"`
	Watch           Watch   `toml:"watch"`
	Output          Output  `toml:"output"`
	Metrics         Metrics `toml:"metrics"`
	CacheSize       int     `toml:"cache_size"`
}

type Exclude struct {
	Files []string `toml:"files"` // glob patterns of object files to skip
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
}

type Output struct {
	DOT       string `toml:"dot"`
	TSV       string `toml:"tsv"`
	RenderDir string `toml:"render_dir"`
}

type Metrics struct {
	Listen string `toml:"listen"` // e.g. ":9091"; empty disables the endpoint
}

func Default() *Config {
	return &Config{
		Watch:     Watch{Debounce: 500 * time.Millisecond},
		Output:    Output{RenderDir: "graphs"},
		CacheSize: 256,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}

	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}
	if cfg.Output.RenderDir == "" {
		cfg.Output.RenderDir = "graphs"
	}

	return cfg, nil
}
