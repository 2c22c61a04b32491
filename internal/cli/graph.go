package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/pipeline"
)

type graphOpts struct {
	output    string
	maxStates int
	detailed  bool
}

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Render the explored search tree",
		Long: `Graph runs the breadth-first search while recording every configuration it
visits and renders the resulting tree with Graphviz, one rank per depth.
The shortest path is highlighted. The output format follows the file
extension: .dot for Graphviz source, .svg for a rendered drawing.

The tree is cut off after --max-states configurations; larger trees are
rarely readable.`,
		Example: `  hanoi graph puzzle.txt -o tree.svg
  echo "3 3 1 1 1 3 3 3" | hanoi graph -o tree.dot --detailed`,
		Args: puzzleArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.dot or .svg)")
	cmd.Flags().IntVar(&opts.maxStates, "max-states", pipeline.DefaultGraphStates, "stop exploring after this many configurations")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include depth and move in node labels")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, args []string, opts graphOpts) error {
	if err := perrors.ValidateExtension(opts.output, pipeline.GraphFormats...); err != nil {
		return err
	}
	p, err := readPuzzle(cmd, args)
	if err != nil {
		return err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.output)), ".")
	sw := startStopwatch(c.Logger)
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	data, ex, err := runner.Graph(cmd.Context(), p, pipeline.GraphOptions{
		MaxStates: opts.maxStates,
		Detailed:  opts.detailed,
		Format:    format,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	sw.done("rendered search tree", "configurations", ex.Tree.Len(), "format", format)

	printSuccess("Search tree for %s", p)
	printFile(opts.output)
	if ex.Truncated {
		printWarning("Tree cut off at %d configurations; raise --max-states to see more", opts.maxStates)
	}
	return nil
}
