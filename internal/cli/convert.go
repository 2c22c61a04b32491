package cli

import (
	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/puzzle"
)

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Re-encode a puzzle as text, JSON or TOML",
		Long: `Convert reads a puzzle in any supported format and writes it in another.
With -o the format follows the file extension; otherwise the puzzle is
written to stdout in the format given by --to.`,
		Example: `  echo "3 3 1 1 1 3 3 3" | hanoi convert -o classic.toml
  hanoi convert classic.toml --to json`,
		Args: puzzleArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := readPuzzle(cmd, args)
			if err != nil {
				return err
			}
			if output != "" {
				if err := perrors.ValidateExtension(output, puzzle.FormatText, puzzle.FormatJSON, puzzle.FormatTOML); err != nil {
					return err
				}
				if err := puzzle.Save(output, p); err != nil {
					return err
				}
				printSuccess("Converted %s", p)
				printFile(output)
				return nil
			}
			if err := perrors.ValidateFormat(format, puzzle.FormatText, puzzle.FormatJSON, puzzle.FormatTOML); err != nil {
				return err
			}
			return puzzle.Encode(cmd.OutOrStdout(), p, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.txt, .json or .toml)")
	cmd.Flags().StringVar(&format, "to", puzzle.FormatJSON, "stdout format: txt, json, toml")
	return cmd
}
