// Package pipeline runs puzzle solves with caching, logging and hooks.
//
// The [Runner] is the single entry point used by every CLI command. It
// validates [Options], consults the result cache, runs the breadth-first
// search from package hanoi, optionally re-verifies the path, and reports
// each run through structured logs and the observability hooks.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Solve(ctx, p, pipeline.Options{MaxStates: 1_000_000})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    // target unreachable
//	}
//
// [Runner.Explore] runs the same search while recording the visited tree
// for the graph command.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hanoi/pkg/cache"
	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
	"github.com/matzehuels/hanoi/pkg/puzzle"
)

const (
	// DefaultMaxStates bounds the visited set of a solve. Large enough for
	// every 3-peg puzzle up to 14 discs and 4-peg puzzles up to 11 discs.
	DefaultMaxStates = 5_000_000

	// DefaultGraphStates bounds the tree drawn by the graph command.
	// Graphviz layouts get unreadable well before this.
	DefaultGraphStates = 500
)

// Options configures a solve.
type Options struct {
	// MaxStates bounds the visited set. 0 selects DefaultMaxStates and a
	// negative value is rejected.
	MaxStates int `json:"max_states,omitempty"`

	// Refresh bypasses cache reads; the fresh result is still written.
	Refresh bool `json:"refresh,omitempty"`

	// Verify replays a found path and checks it ends at the target.
	// Cached paths are always verified.
	Verify bool `json:"verify,omitempty"`

	// OnVisit is passed through to [hanoi.Options]. It is not called on a
	// cache hit.
	OnVisit func(c *hanoi.Configuration, depth int) `json:"-"`

	// Logger overrides the runner's logger for this call.
	Logger *log.Logger `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks options and fills defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MaxStates < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "max states must not be negative, got %d", o.MaxStates)
	}
	if o.MaxStates == 0 {
		o.MaxStates = DefaultMaxStates
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SolutionKeyOpts returns the cache key options for these options.
func (o *Options) SolutionKeyOpts() cache.SolutionKeyOpts {
	return cache.SolutionKeyOpts{MaxStates: o.MaxStates}
}

// Stats summarizes a search. It is zero for cached results.
type Stats struct {
	Expanded    int           `json:"expanded"`
	Visited     int           `json:"visited"`
	MaxFrontier int           `json:"max_frontier"`
	Depth       int           `json:"depth"`
	Duration    time.Duration `json:"duration_ns"`
}

func statsOf(s hanoi.Stats, d time.Duration) Stats {
	return Stats{
		Expanded:    s.Expanded,
		Visited:     s.Visited,
		MaxFrontier: s.MaxFrontier,
		Depth:       s.Depth,
		Duration:    d,
	}
}

// Result is the outcome of one solve.
type Result struct {
	// RunID identifies this run in logs and JSON output.
	RunID string `json:"run_id"`

	puzzle.Solution

	// Cached is true when the solution came from the cache.
	Cached bool `json:"cached"`

	Stats Stats `json:"stats"`
}
