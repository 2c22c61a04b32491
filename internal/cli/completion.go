package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/pipeline"
	"github.com/matzehuels/hanoi/pkg/puzzle"
)

var puzzleExts = []string{puzzle.FormatText, puzzle.FormatJSON, puzzle.FormatTOML}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for hanoi. Puzzle arguments complete
to .txt, .json and .toml files and format flags to their allowed values.

  $ source <(hanoi completion bash)
  $ hanoi completion zsh > "${fpath[1]}/_hanoi"
  $ hanoi completion fish > ~/.config/fish/completions/hanoi.fish
  PS> hanoi completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// registerCompletions wires argument and flag completions into the puzzle
// commands of root.
func registerCompletions(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		switch cmd.Name() {
		case "solve", "show", "graph", "play", "convert":
			cmd.ValidArgsFunction = completePuzzleArg
		default:
			continue
		}

		switch cmd.Name() {
		case "solve":
			_ = cmd.RegisterFlagCompletionFunc("format", completeValues(formatText, formatJSON))
		case "graph":
			_ = cmd.RegisterFlagCompletionFunc("output", completeExt(pipeline.GraphFormats...))
		case "show":
			_ = cmd.RegisterFlagCompletionFunc("svg", completeExt("svg"))
		case "convert":
			_ = cmd.RegisterFlagCompletionFunc("to", completeValues(puzzleExts...))
			_ = cmd.RegisterFlagCompletionFunc("output", completeExt(puzzleExts...))
		}
	}
}

// completePuzzleArg completes the single optional puzzle file.
func completePuzzleArg(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return puzzleExts, cobra.ShellCompDirectiveFilterFileExt
}

// completeExt completes file names ending in one of exts.
func completeExt(exts ...string) cobra.CompletionFunc {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return exts, cobra.ShellCompDirectiveFilterFileExt
	}
}

func completeValues(values ...string) cobra.CompletionFunc {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
