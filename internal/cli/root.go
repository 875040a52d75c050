// Package cli implements the gridwalk command line.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridwalk/gridpath"
	"github.com/katalvlaran/gridwalk/internal/config"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
)

// UsageLine is printed, alone, when the positional argument count is wrong.
const UsageLine = "Usage: gridwalk max_distance robot_x robot_y treasure_x treasure_y"

// positionalArgs is the exact positional count that triggers a search.
const positionalArgs = 5

var errCountOnlyLimit = errors.New("--limit cannot be combined with --count-only")

// options holds flag values for one invocation.
type options struct {
	ConfigPath string
	Format     string
	Output     string
	Summary    bool
	Strict     bool
	Limit      int
	CountOnly  bool
	Verbose    bool
}

// Run executes gridwalk with args (program name excluded) and returns the
// process exit code. A wrong positional count is not an error: it prints
// UsageLine and returns ExitOK.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, env map[string]string) int {
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}

	cmd := newRootCmd(stdout, stderr, env)
	cmd.SetArgs(positionalize(cmd.Flags(), args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitError
	}

	return ExitOK
}

func newRootCmd(stdout, stderr io.Writer, env map[string]string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gridwalk [flags] max_distance robot_x robot_y treasure_x treasure_y",
		Short: "Enumerate monotone grid routes with a cap on straight runs",
		Long: `gridwalk lists every route from the robot to the treasure that only
moves toward the treasure and never repeats one direction more than
max_distance times in a row.

Routes are printed one per line as N/S/E/W sequences, in discovery order.
Flags go before the positional values; negative values need no quoting,
e.g. gridwalk 2 -1 0 1 1.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != positionalArgs {
				fmt.Fprintln(stdout, UsageLine)
				return nil
			}

			return execute(cmd, opts, args, stdout, stderr, env)
		},
	}

	f := cmd.Flags()
	f.SetInterspersed(false)
	f.StringVar(&opts.ConfigPath, "config", "", "Config file (YAML, or JSON with comments for .json/.jsonc)")
	f.StringVarP(&opts.Format, "format", "f", config.FormatText, "Output format (text|json|yaml)")
	f.StringVarP(&opts.Output, "output", "o", "", "Write output atomically to this file instead of stdout")
	f.BoolVar(&opts.Summary, "summary", false, "Append a summary box (text format only)")
	f.BoolVar(&opts.Strict, "strict", false, "Reject malformed integers, max_distance <= 0 and negative coordinates")
	f.IntVar(&opts.Limit, "limit", 0, "Stop after this many routes (0 = all); not allowed with --count-only")
	f.BoolVar(&opts.CountOnly, "count-only", false, "Print only the number of routes, computed without enumerating (ignores a config-file limit)")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log progress to stderr")

	return cmd
}

// execute runs one search for a well-formed invocation.
func execute(cmd *cobra.Command, opts *options, args []string, stdout, stderr io.Writer, env map[string]string) error {
	logger := log.New(io.Discard, "gridwalk: ", 0)
	if opts.Verbose {
		logger.SetOutput(stderr)
	}

	// 1. Resolve configuration: file and env, then explicitly set flags
	cfg, loadedFrom, err := config.Load(opts.ConfigPath, env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if loadedFrom != "" {
		logger.Printf("config loaded from %s", loadedFrom)
	}
	mergeFlags(&cfg, cmd, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.CountOnly && cmd.Flags().Changed("limit") {
		return errCountOnlyLimit
	}

	// 2. Parse the positional integers
	req, err := parseRequest(args, cfg.Strict)
	if err != nil {
		return err
	}

	// 3. Search (or count) and render into a buffer
	var buf bytes.Buffer
	if opts.CountOnly {
		if cfg.Strict {
			if err := req.validate(); err != nil {
				return err
			}
		}
		n := gridpath.CountPaths(req.Start, req.Target, req.MaxRun)
		logger.Printf("counted %s paths", n)
		if err := renderCount(&buf, cfg, req, n); err != nil {
			return err
		}
	} else {
		searchOpts := []gridpath.Option{
			gridpath.WithContext(cmd.Context()),
			gridpath.WithLimit(cfg.Limit),
		}
		if cfg.Strict {
			searchOpts = append(searchOpts, gridpath.WithStrict())
		}

		explorer := gridpath.NewExplorer(req.Start, req.Target, req.MaxRun)
		began := time.Now()
		if _, err := explorer.Run(searchOpts...); err != nil {
			return fmt.Errorf("search: %w", err)
		}
		logger.Printf("found %d paths in %s", explorer.Count(), time.Since(began))

		if err := renderPaths(&buf, cfg, req, explorer); err != nil {
			return err
		}
	}

	// 4. Emit
	if opts.Output == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	if err := atomic.WriteFile(opts.Output, &buf); err != nil {
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}
	logger.Printf("wrote %s", opts.Output)

	return nil
}

// mergeFlags lets flags the user actually set win over file and env values.
func mergeFlags(cfg *config.Config, cmd *cobra.Command, opts *options) {
	f := cmd.Flags()
	if f.Changed("format") {
		cfg.Format = opts.Format
	}
	if f.Changed("strict") {
		cfg.Strict = opts.Strict
	}
	if f.Changed("summary") {
		cfg.Summary = opts.Summary
	}
	if f.Changed("limit") {
		cfg.Limit = opts.Limit
	}
}
