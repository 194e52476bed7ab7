// Package cli implements the aoc command-line runner.
//
// Commands:
//   - run <year> <day> [input]: solve one puzzle and print both parts
//   - list: show every registered puzzle
//
// The runner reads its settings through internal/config. --verbose forces
// debug logging; otherwise log.level from the configuration applies. Logs go
// to stderr, answers to stdout.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aocpath/internal/config"
)

// app holds state shared by the subcommands once the root has run.
type app struct {
	stdout, stderr io.Writer
	cfg            *config.Config
}

// Execute builds the command tree and runs it with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "aoc",
		Short:         "aoc solves Advent of Code puzzles with a shared grid/graph engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var opts []config.LoaderOption
			if configPath != "" {
				opts = append(opts, config.WithConfigPaths(configPath))
			}
			loader := config.NewLoader(opts...)
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			level, err := log.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(stderr, level, cfg.Log.Timestamps)
			if src := loader.Source(); src != "" {
				logger.Debug("loaded config", "file", src)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))

			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default aoc.yaml)")

	root.AddCommand(a.runCommand())
	root.AddCommand(a.listCommand())

	return root
}
