package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/puzzle"
)

// readPuzzle loads the puzzle named by args[0], or reads the token format
// from stdin when no file (or "-") is given.
func readPuzzle(cmd *cobra.Command, args []string) (*puzzle.Puzzle, error) {
	logger := loggerFromContext(cmd.Context())
	if len(args) == 0 || args[0] == "-" {
		logger.Debug("reading puzzle from stdin")
		return puzzle.Read(cmd.InOrStdin())
	}
	path := args[0]
	logger.Debug("reading puzzle", "path", path, "format", puzzle.FormatOf(path))
	return puzzle.Load(path)
}

// puzzleArgs accepts an optional puzzle file argument.
var puzzleArgs = cobra.MaximumNArgs(1)
