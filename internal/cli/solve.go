package cli

import (
	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/pipeline"
	"github.com/matzehuels/hanoi/pkg/puzzle"
)

// Solve output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// ErrNoSolution is returned by the solve command when the target cannot be
// reached. main maps it to exit status 2.
var ErrNoSolution = perrors.New(perrors.ErrCodeNoSolution, "target configuration is unreachable")

type solveOpts struct {
	format    string
	maxStates int
	noCache   bool
	refresh   bool
	verify    bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print a shortest move sequence",
		Long: `Solve finds a shortest sequence of legal moves from the source to the
target configuration and prints it as a move count followed by one
"<from> <to>" line per move, with 1-based peg numbers.

Nothing is printed and the exit status is 2 when the target is unreachable.`,
		Example: `  echo "3 3 1 1 1 3 3 3" | hanoi solve
  hanoi solve puzzle.json --format json
  hanoi solve puzzle.toml --max-states 100000 --no-cache`,
		Args: puzzleArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json")
	cmd.Flags().IntVar(&opts.maxStates, "max-states", 0, "abort after visiting this many configurations (default from config or 5000000)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the solution cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached solutions and search again")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "replay the solution and check that it reaches the target")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, args []string, opts solveOpts) error {
	if err := perrors.ValidateFormat(opts.format, formatText, formatJSON); err != nil {
		return err
	}
	p, err := readPuzzle(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	popts := pipeline.Options{
		MaxStates: c.maxStates(opts.maxStates),
		Refresh:   opts.refresh,
		Verify:    opts.verify,
	}
	var spinner *Spinner
	if isTerminal(statusOut) {
		spinner = newSpinner(ctx, statusOut, "Searching "+p.String()+"...")
		popts.OnVisit = spinner.Visit
		spinner.Start()
	}
	res, err := runner.Solve(ctx, p, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.format == formatJSON {
		if err := puzzle.WriteSolutionJSON(out, res); err != nil {
			return err
		}
	} else if res.Found {
		if err := puzzle.WriteMoves(out, res.Path()); err != nil {
			return err
		}
	}

	if !res.Found {
		return ErrNoSolution
	}
	if isTerminal(statusOut) {
		printStats(res)
	}
	return nil
}
