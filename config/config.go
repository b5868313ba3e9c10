// Package config loads the lvpath TOML configuration file.
//
//	[input]
//	path = "graph.yaml"
//	format = "yaml"      # text | yaml | toml, empty = from extension
//
//	[engine]
//	source = 0
//	strategy = "naive"   # naive | heap
//
//	[output]
//	style = "auto"       # auto | plain | table
//
//	[log]
//	level = "info"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/edgelist"
	"github.com/katalvlaran/lvpath/report"
)

// ErrInvalid indicates a configuration value that failed validation.
var ErrInvalid = errors.New("config: invalid value")

// Config is the decoded configuration file. Every section is optional.
type Config struct {
	Input  Input  `toml:"input"`
	Engine Engine `toml:"engine"`
	Output Output `toml:"output"`
	Log    Log    `toml:"log"`
}

// Input names the edge list to read. An empty Path selects the built-in
// sample graph; an empty Format is derived from the file extension.
type Input struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`
}

// Engine configures the shortest-path run.
type Engine struct {
	Source   int    `toml:"source"`
	Strategy string `toml:"strategy"` // naive | heap
}

// Output selects how distances are rendered.
type Output struct {
	Style string `toml:"style"` // auto | plain | table
}

// Log sets the logrus level, e.g. "info" or "debug".
type Log struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// Load reads, defaults and validates the TOML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %s", ErrInvalid, path, undecoded[0])
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.Engine.Strategy) == "" {
		cfg.Engine.Strategy = dijkstra.NaiveScan.String()
	}
	if strings.TrimSpace(cfg.Output.Style) == "" {
		cfg.Output.Style = report.Auto.String()
	}
	if strings.TrimSpace(cfg.Log.Level) == "" {
		cfg.Log.Level = logrus.InfoLevel.String()
	}
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if err := validateInput(c); err != nil {
		return err
	}
	if err := validateEngine(c); err != nil {
		return err
	}
	if _, err := report.ParseStyle(c.Output.Style); err != nil {
		return fmt.Errorf("%w: output.style: %v", ErrInvalid, err)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}

	return nil
}

func validateInput(c *Config) error {
	if c.Input.Format == "" {
		return nil
	}
	if _, err := edgelist.ParseFormat(c.Input.Format); err != nil {
		return fmt.Errorf("%w: input.format: %v", ErrInvalid, err)
	}

	return nil
}

func validateEngine(c *Config) error {
	if c.Engine.Source < 0 {
		return fmt.Errorf("%w: engine.source must be >= 0, got %d", ErrInvalid, c.Engine.Source)
	}
	if _, err := dijkstra.ParseStrategy(c.Engine.Strategy); err != nil {
		return fmt.Errorf("%w: engine.strategy: %v", ErrInvalid, err)
	}

	return nil
}

// The accessors below expect a Config that passed Validate. On a value that
// does not parse they return the same default applyDefaults would set.

// Strategy returns the parsed engine strategy, NaiveScan if invalid.
func (c *Config) Strategy() dijkstra.Strategy {
	s, err := dijkstra.ParseStrategy(c.Engine.Strategy)
	if err != nil {
		return dijkstra.NaiveScan
	}
	return s
}

// Style returns the parsed output style, Auto if invalid.
func (c *Config) Style() report.Style {
	s, err := report.ParseStyle(c.Output.Style)
	if err != nil {
		return report.Auto
	}
	return s
}

// Level returns the parsed log level, Info if invalid.
func (c *Config) Level() logrus.Level {
	l, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return l
}
