package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/hanoi/pkg/cache"
	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
	"github.com/matzehuels/hanoi/pkg/observability"
	"github.com/matzehuels/hanoi/pkg/puzzle"
)

// keyTypeSolution labels solution entries in cache hooks.
const keyTypeSolution = "solution"

// Runner encapsulates solving with caching.
//
// The Runner is stateless except for the cache and logger; multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is the lifetime of cached solutions.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLSolution,
	}
}

// Solve finds a shortest move sequence from p.Source to p.Target.
//
// An unreachable target is not an error: the result has Found false.
// Errors carry a code from package errors: STATE_LIMIT when the search
// outgrows opts.MaxStates, INVALID_PUZZLE for mismatched shapes, INTERNAL_ERROR
// when verification fails. Context cancellation is returned unchanged.
func (r *Runner) Solve(ctx context.Context, p *puzzle.Puzzle, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	res := &Result{RunID: uuid.NewString()}
	logger = logger.With("run_id", res.RunID)
	start := time.Now()

	observability.Search().OnSearchStart(ctx, p.Pegs(), p.Discs())
	err := r.solve(ctx, p, opts, res, logger)
	observability.Search().OnSearchComplete(ctx, searchEvent(res, time.Since(start), err))
	if err != nil {
		return nil, err
	}

	logger.Info("solved",
		"found", res.Found,
		"moves", res.Count,
		"cached", res.Cached,
		"expanded", res.Stats.Expanded,
		"visited", res.Stats.Visited,
		"duration", time.Since(start))
	return res, nil
}

func (r *Runner) solve(ctx context.Context, p *puzzle.Puzzle, opts Options, res *Result, logger *log.Logger) error {
	key := r.Keyer.SolutionKey(p.Source.String(), p.Target.String(), opts.SolutionKeyOpts())

	if !opts.Refresh {
		if sol, ok := r.lookup(ctx, key, p, logger); ok {
			res.Solution = sol
			res.Cached = true
			return nil
		}
	}

	logger.Debug("searching", "pegs", p.Pegs(), "discs", p.Discs(), "max_states", opts.MaxStates)
	start := time.Now()
	out, err := hanoi.Search(ctx, p.Source, p.Target, hanoi.Options{MaxStates: opts.MaxStates, OnVisit: opts.OnVisit})
	if err != nil {
		return searchError(err, opts.MaxStates)
	}
	res.Stats = statsOf(out.Stats, time.Since(start))
	res.Solution = puzzle.NewSolution(out.Found(), out.Path())

	if opts.Verify && res.Found {
		if err := verify(p, res.Path()); err != nil {
			return err
		}
		logger.Debug("verified path", "moves", res.Count)
	}

	r.store(ctx, key, res.Solution, logger)
	return nil
}

// lookup returns a cached solution for p. Entries that fail to decode or
// whose path does not replay to the target count as misses.
func (r *Runner) lookup(ctx context.Context, key string, p *puzzle.Puzzle, logger *log.Logger) (puzzle.Solution, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Debug("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeSolution)
		return puzzle.Solution{}, false
	}

	sol, err := puzzle.UnmarshalSolution(data)
	if err == nil && sol.Found {
		err = verify(p, sol.Path())
	}
	if err != nil {
		logger.Debug("discarding cache entry", "err", err)
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, keyTypeSolution)
		return puzzle.Solution{}, false
	}

	observability.Cache().OnCacheHit(ctx, keyTypeSolution)
	logger.Debug("cache hit", "moves", sol.Count)
	return sol, true
}

func (r *Runner) store(ctx context.Context, key string, sol puzzle.Solution, logger *log.Logger) {
	data, err := puzzle.MarshalSolution(sol)
	if err != nil {
		logger.Debug("encode solution for cache", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		logger.Debug("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyTypeSolution, len(data))
}

// verify replays path from the source and checks it lands on the target.
func verify(p *puzzle.Puzzle, path hanoi.Path) error {
	end, err := hanoi.Replay(p.Source, path)
	if err != nil {
		return perrors.Wrap(perrors.ErrCodeInternal, err, "replay solution")
	}
	if !end.Equal(p.Target) {
		return perrors.New(perrors.ErrCodeInternal, "solution ends at %s, want %s", end, p.Target)
	}
	return nil
}

// searchError maps search failures to coded errors.
func searchError(err error, limit int) error {
	switch {
	case errors.Is(err, hanoi.ErrStateLimit):
		return perrors.Wrap(perrors.ErrCodeStateLimit, err, "search exceeded %d states", limit)
	case errors.Is(err, hanoi.ErrShapeMismatch), errors.Is(err, hanoi.ErrNilConfiguration):
		return perrors.Wrap(perrors.ErrCodeInvalidPuzzle, err, "invalid puzzle")
	default:
		return err
	}
}

func searchEvent(res *Result, d time.Duration, err error) observability.SearchEvent {
	ev := observability.SearchEvent{
		RunID:    res.RunID,
		Moves:    res.Count,
		Expanded: res.Stats.Expanded,
		Visited:  res.Stats.Visited,
		Cached:   res.Cached,
		Duration: d,
		Err:      err,
	}
	if err == nil {
		ev.Outcome = hanoi.Exhausted.String()
		if res.Found {
			ev.Outcome = hanoi.Found.String()
		}
	}
	return ev
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
