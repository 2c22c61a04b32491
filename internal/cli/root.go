package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/buildinfo"
	"github.com/matzehuels/hanoi/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The persistent pre-run hook applies --verbose, loads the config file and,
// in verbose mode, routes search and cache hooks to the debug log.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Hanoi solves generalized Tower of Hanoi puzzles",
		Long: `Hanoi finds a shortest move sequence between two arbitrary configurations
of a Tower of Hanoi puzzle with any number of pegs and discs.

Puzzles are read from standard input as whitespace-separated integers
("n k", then n source pegs, then n target pegs, all 1-based) or from a
.txt, .json or .toml file.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/hanoi/config.toml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	registerCompletions(root)

	return root
}

func (c *CLI) setup(cmd *cobra.Command) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
		h := &logHooks{logger: c.Logger}
		observability.SetSearchHooks(h)
		observability.SetCacheHooks(h)
	}
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	path, required := c.configFile, c.configFile != ""
	if !required {
		var err error
		if path, err = configPath(); err != nil {
			c.Logger.Debug("no config directory", "err", err)
			return nil
		}
	}
	cfg, err := loadConfig(path, required)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("loaded config", "path", path, "backend", cfg.Cache.Backend, "max_states", cfg.MaxStates)
	return nil
}
