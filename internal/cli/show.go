package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/pipeline"
	"github.com/matzehuels/hanoi/pkg/puzzle"
	"github.com/matzehuels/hanoi/pkg/render/pegs"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var svgPath string

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Draw the source and target configurations",
		Example: `  hanoi show puzzle.json
  hanoi show puzzle.txt --svg puzzle.svg`,
		Args: puzzleArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPuzzle(cmd, args)
			if err != nil {
				return err
			}
			if svgPath != "" {
				return writeShowSVG(svgPath, p)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), drawPuzzle(p, isTerminal(cmd.OutOrStdout())))
			if err == nil && len(args) == 1 {
				printNextStep("Solve it", "hanoi solve "+args[0])
			}
			return err
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG drawing to this file instead")
	return cmd
}

// drawPuzzle lays out source and target side by side under titles.
func drawPuzzle(p *puzzle.Puzzle, color bool) string {
	opts := pegs.TextOptions{Color: color}
	title := lipgloss.NewStyle()
	if color {
		title = StyleTitle
	}
	source := lipgloss.JoinVertical(lipgloss.Left, title.Render("source"), "", pegs.Text(p.Source, opts))
	target := lipgloss.JoinVertical(lipgloss.Left, title.Render("target"), "", pegs.Text(p.Target, opts))
	header := fmt.Sprintf("%d discs, %d pegs", p.Discs(), p.Pegs())
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, source, "    ", target),
	)
}

func writeShowSVG(path string, p *puzzle.Puzzle) error {
	if err := perrors.ValidateExtension(path, "svg"); err != nil {
		return err
	}
	if err := os.WriteFile(path, pipeline.RenderPuzzleSVG(p), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printSuccess("Drew %s", p)
	printFile(path)
	return nil
}
