package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/junction/config"
	"github.com/katalvlaran/junction/point"
	"github.com/katalvlaran/junction/proximity"
)

// cliFlags holds the persistent flag values of one command tree.
type cliFlags struct {
	configPath string
	maxPoints  int
	pairLimit  int
	topGroups  int
	verbose    bool
}

// newRootCmd builds the junction command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	f := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:          "junction",
		Short:        "Group 3-D points by connecting the nearest pairs first",
		SilenceUsage: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML file with max_points, pair_limit and top_groups")
	pf.IntVar(&f.maxPoints, "max-points", 0, "maximum number of input points (overrides config)")
	pf.IntVar(&f.pairLimit, "pairs", 0, "number of nearest pairs merged by groups (overrides config)")
	pf.IntVar(&f.topGroups, "top", 0, "number of largest groups to multiply (overrides config)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log debug records to stderr")

	spanCmd := &cobra.Command{
		Use:   "span <file>",
		Short: "Print the pair whose connection joins every point into one group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.runSpan(cmd, args[0])
		},
	}
	groupsCmd := &cobra.Command{
		Use:   "groups <file>",
		Short: "Print the product of the largest group sizes after merging the nearest pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return f.runGroups(cmd, args[0])
		},
	}
	rootCmd.AddCommand(spanCmd, groupsCmd)

	return rootCmd
}

func (f *cliFlags) runSpan(cmd *cobra.Command, path string) error {
	pts, opts, err := f.setup(cmd, path, false)
	if err != nil {
		return err
	}

	res, err := proximity.Span(pts, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d %d %s %s %d\n", res.A, res.B, pts[res.A], pts[res.B], res.XProduct)

	return nil
}

func (f *cliFlags) runGroups(cmd *cobra.Command, path string) error {
	pts, opts, err := f.setup(cmd, path, true)
	if err != nil {
		return err
	}

	res, err := proximity.TopGroups(pts, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d %v\n", res.Product, res.Sizes)

	return nil
}

// setup resolves configuration and logger, then loads the input points.
// bounded reports whether the command ranks only the nearest pairs, the one
// case where the pair limit must fit under max_points.
func (f *cliFlags) setup(cmd *cobra.Command, path string, bounded bool) ([]point.Point, []proximity.Option, error) {
	cfg, err := f.resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if bounded {
		if err := cfg.ValidatePairLimit(); err != nil {
			return nil, nil, err
		}
	}
	logger := newLogger(cmd.ErrOrStderr(), f.verbose).With(slog.String("run_id", uuid.NewString()))

	pts, err := point.ParseFile(path, cfg.MaxPoints)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("points loaded",
		slog.String("file", path),
		slog.Int("points", len(pts)),
		slog.Int("max_points", cfg.MaxPoints),
		slog.Int("pair_limit", cfg.PairLimit),
		slog.Int("top_groups", cfg.TopGroups))

	return pts, []proximity.Option{proximity.WithConfig(cfg), proximity.WithLogger(logger)}, nil
}

// resolveConfig starts from the defaults, applies the config file if given,
// then any flag set explicitly on the command line.
func (f *cliFlags) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("max-points") {
		cfg.MaxPoints = f.maxPoints
	}
	if flags.Changed("pairs") {
		cfg.PairLimit = f.pairLimit
	}
	if flags.Changed("top") {
		cfg.TopGroups = f.topGroups
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
