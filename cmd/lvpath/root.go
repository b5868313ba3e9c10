package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/config"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/edgelist"
	"github.com/katalvlaran/lvpath/report"
)

var errSampleWithFile = errors.New("--sample cannot be combined with an edge file argument")

type rootOptions struct {
	configPath string
	format     string
	source     int
	strategy   string
	style      string
	sample     bool
	verbose    bool
}

func newRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "lvpath [edge-file]",
		Short:        "Print shortest distances from a source node to every node of an undirected graph.",
		Args:         cobra.MaximumNArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "edge file format: text, yaml or toml (default: from extension)")
	cmd.Flags().IntVarP(&opts.source, "source", "s", 0, "source node index")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "naive", "minimum selection: naive or heap")
	cmd.Flags().StringVar(&opts.style, "style", "auto", "output style: auto, plain or table")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "use the built-in eight-node demonstration graph")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := resolveConfig(cmd, opts, args)
	if err != nil {
		return err
	}

	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(cfg.Level())
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	// Interrupts are honoured between stages only. A stage already running,
	// including the distance computation itself, completes first.
	ctx := cmd.Context()

	edges, err := loadEdges(cfg, opts.sample)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	g, err := core.BuildGraph(edges)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"nodes": g.NodeCount(), "edges": g.EdgeCount()}).Debug("graph built")
	if err := ctx.Err(); err != nil {
		return err
	}

	d, err := dijkstra.ComputeShortestDistances(g,
		dijkstra.WithSource(cfg.Engine.Source),
		dijkstra.WithStrategy(cfg.Strategy()),
		dijkstra.WithLogger(log.StandardLogger()),
	)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), cfg.Style(), g, d)
}

// resolveConfig layers explicitly set flags and the positional file over the
// config file (or the defaults when no file is given).
func resolveConfig(cmd *cobra.Command, opts *rootOptions, args []string) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if opts.sample && len(args) == 1 {
		return nil, fmt.Errorf("%w: %s", errSampleWithFile, args[0])
	}
	if len(args) == 1 {
		cfg.Input.Path = args[0]
	}
	if flags.Changed("format") {
		cfg.Input.Format = opts.format
	}
	if flags.Changed("source") {
		cfg.Engine.Source = opts.source
	}
	if flags.Changed("strategy") {
		cfg.Engine.Strategy = opts.strategy
	}
	if flags.Changed("style") {
		cfg.Output.Style = opts.style
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadEdges reads cfg.Input.Path, or returns the sample graph when sample is
// set or no path is configured. An explicit --sample overrides input.path.
func loadEdges(cfg *config.Config, sample bool) ([]core.Edge, error) {
	if sample && cfg.Input.Path != "" {
		log.WithField("path", cfg.Input.Path).Warn("--sample given, ignoring input.path from the config file")
	}
	if sample || cfg.Input.Path == "" {
		log.Debug("using the built-in sample graph")
		return edgelist.Sample(), nil
	}

	format := edgelist.FormatFromPath(cfg.Input.Path)
	if cfg.Input.Format != "" {
		f, err := edgelist.ParseFormat(cfg.Input.Format)
		if err != nil {
			return nil, err
		}
		format = f
	}
	log.WithFields(log.Fields{"path": cfg.Input.Path, "format": format.String()}).Debug("reading edge list")

	edges, err := edgelist.LoadFormat(cfg.Input.Path, format)
	if err != nil {
		return nil, fmt.Errorf("reading edges: %w", err)
	}

	return edges, nil
}
