package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aocpath/internal/input"
	"github.com/katalvlaran/aocpath/internal/solutions"
)

func (a *app) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <year> <day> [input]",
		Short: "Solve one puzzle and print part 1 and part 2",
		Long: `Solve one puzzle. Without an input path the file is read from
<input_dir>/<year>/day<DD>.txt. Both answers are printed on stdout, one per line.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year %q: %w", args[0], err)
			}
			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("day %q: %w", args[1], err)
			}
			puzzle, err := solutions.Lookup(year, day)
			if err != nil {
				return err
			}

			path := input.Path(a.cfg.InputDir, year, day)
			if len(args) == 3 {
				path = args[2]
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx).With("puzzle", puzzle.Key, "title", puzzle.Title)
			logger.Debug("reading input", "path", path)
			lines, err := input.ReadFile(path)
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			ans, err := puzzle.Solve(ctx, lines)
			if err != nil {
				logger.Error("solve failed", "err", err)
				return fmt.Errorf("%s: %w", puzzle.Key, err)
			}
			prog.done("solved", "part1", ans.Part1, "part2", ans.Part2)

			return ans.Fprint(a.stdout)
		},
	}
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, p := range solutions.All() {
				fmt.Fprintf(tw, "%d\t%02d\t%s\n", p.Year, p.Day, p.Title)
			}
			return tw.Flush()
		},
	}
}
