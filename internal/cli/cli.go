// Package cli implements the hanoi command-line interface.
//
// # Commands
//
//   - solve: print a shortest move sequence (exit status 2 when unreachable)
//   - show: draw the source and target configurations
//   - graph: render the explored search tree with Graphviz
//   - play: step through a solution in an interactive terminal UI
//   - convert: re-encode a puzzle as text, JSON or TOML
//   - cache: inspect or clear the solution cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// routes search and cache events to the log. Human-facing status lines go
// to stderr so that stdout carries only the command's result.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/hanoi/pkg/cache"
	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/pipeline"
)

const (
	// appName is the application name used for directories and display.
	appName = "hanoi"

	// keyScope namespaces cache keys so a shared backend survives format changes.
	keyScope = "v1:"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	config     Config
	configFile string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. Debug logging also reports callers.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.Logger.SetReportCaller(level <= log.DebugLevel)
}

// newRunner creates a pipeline runner for CLI use. Cache backends that fail
// to open are reported and replaced by the null cache; a broken cache never
// fails a solve.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	ch := cache.NewNullCache()
	if !noCache {
		opened, err := c.openCache(ctx)
		if err != nil {
			c.Logger.Warn("cache disabled", "backend", c.config.Cache.Backend, "err", err)
		} else {
			ch = opened
		}
	}
	r := pipeline.NewRunner(ch, cache.NewScopedKeyer(nil, keyScope), c.Logger)
	if ttl := c.config.Cache.ttl(); ttl > 0 {
		r.TTL = ttl
	}
	return r
}

// openCache opens the configured cache backend.
func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	cfg := cache.Config{Backend: c.config.Cache.Backend, URL: c.config.Cache.URL}
	if cfg.Backend == "" || cfg.Backend == cache.BackendFile {
		dir, err := cacheDir()
		if err != nil {
			return nil, err
		}
		cfg.Dir = dir
	}
	return cache.Open(ctx, cfg)
}

// maxStates returns flagValue when set, else the configured default.
func (c *CLI) maxStates(flagValue int) int {
	if flagValue != 0 {
		return flagValue
	}
	return c.config.MaxStates
}

// cacheDir returns the cache directory using XDG standard (~/.cache/hanoi/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configPath returns the default config file (~/.config/hanoi/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Hint suggests a fix for err, or returns "" when there is nothing to add.
func Hint(err error) string {
	switch perrors.GetCode(err) {
	case perrors.ErrCodeStateLimit:
		return "raise --max-states or max_states in the config file"
	case perrors.ErrCodeInvalidInput:
		return `expected "n k" followed by n source and n target peg numbers`
	case perrors.ErrCodeInvalidConfig:
		return "check the config file (default $XDG_CONFIG_HOME/hanoi/config.toml)"
	case perrors.ErrCodeInternal:
		return "rerun with --refresh to bypass the cache"
	}
	return ""
}
