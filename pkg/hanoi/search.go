package hanoi

import (
	"context"
	"errors"
	"fmt"
)

// Search errors. An unreachable target is not an error; see [Exhausted].
var (
	// ErrNilConfiguration is returned when source or target is nil.
	ErrNilConfiguration = errors.New("hanoi: nil configuration")

	// ErrShapeMismatch is returned when source and target differ in peg or disc count.
	ErrShapeMismatch = errors.New("hanoi: source and target differ in pegs or discs")

	// ErrStateLimit is returned when the visited set would grow past Options.MaxStates.
	ErrStateLimit = errors.New("hanoi: state limit reached")
)

// Outcome is the terminal state of a search.
type Outcome int

const (
	// Exhausted means every reachable configuration was expanded without
	// meeting the target.
	Exhausted Outcome = iota

	// Found means the target was dequeued; Result.Target carries the lineage.
	Found
)

// String returns "found" or "exhausted".
func (o Outcome) String() string {
	if o == Found {
		return "found"
	}
	return "exhausted"
}

// Options tunes a search. The zero value searches without limits.
type Options struct {
	// MaxStates caps the number of distinct configurations recorded in the
	// visited set. Zero means unlimited.
	MaxStates int

	// OnVisit is called for every dequeued configuration, including the
	// target, with its distance from the source.
	OnVisit func(c *Configuration, depth int)
}

// Stats summarizes the work done by a search.
type Stats struct {
	Expanded    int // configurations whose successors were generated
	Visited     int // distinct configurations enqueued, source included
	MaxFrontier int // largest frontier length observed
	Depth       int // distance of the last dequeued configuration
}

// Result is the outcome of [Search].
type Result struct {
	Outcome Outcome
	Target  *Configuration // matched configuration; nil when Exhausted
	Stats   Stats
}

// Found reports whether the target was reached.
func (r *Result) Found() bool { return r.Outcome == Found }

// Path returns the moves from source to target, or nil when Exhausted.
func (r *Result) Path() Path {
	if r.Outcome != Found {
		return nil
	}
	return Reconstruct(r.Target)
}

// queueItem pairs a configuration with its BFS depth.
type queueItem struct {
	conf  *Configuration
	depth int
}

// walker holds the mutable state of one search.
type walker struct {
	ctx     context.Context
	opts    Options
	target  *Configuration
	queue   []queueItem
	visited map[string]struct{}
	res     *Result
}

// Search runs a breadth-first search from source to target.
//
// The frontier is strictly FIFO and a configuration is marked visited when it
// is enqueued, so each configuration is expanded at most once and the first
// time the target is dequeued its parent chain is a shortest path.
//
// An unreachable target yields a Result with Outcome [Exhausted] and a nil
// error. Errors are reserved for invalid input, [ErrStateLimit], and context
// cancellation.
func Search(ctx context.Context, source, target *Configuration, opts Options) (*Result, error) {
	if source == nil || target == nil {
		return nil, ErrNilConfiguration
	}
	if !source.SameShape(target) {
		return nil, fmt.Errorf("%w: source has %d pegs/%d discs, target has %d pegs/%d discs",
			ErrShapeMismatch, source.Pegs(), source.Discs(), target.Pegs(), target.Discs())
	}
	if ctx == nil {
		ctx = context.Background()
	}

	w := &walker{
		ctx:     ctx,
		opts:    opts,
		target:  target,
		visited: make(map[string]struct{}),
		res:     &Result{Outcome: Exhausted},
	}
	// The source is the root of the parent tree regardless of how it was built.
	root := &Configuration{pegs: source.pegs, discs: source.discs, key: source.key}
	if err := w.enqueue(root, 0); err != nil {
		return nil, err
	}
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// loop dequeues until the target is matched or the frontier is empty.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if w.opts.OnVisit != nil {
			w.opts.OnVisit(item.conf, item.depth)
		}
		if item.conf.Equal(w.target) {
			w.res.Outcome = Found
			w.res.Target = item.conf
			return nil
		}

		w.res.Stats.Expanded++
		for _, next := range item.conf.Successors() {
			if _, seen := w.visited[next.key]; seen {
				continue
			}
			if err := w.enqueue(next, item.depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// enqueue marks c visited and appends it to the frontier tail.
func (w *walker) enqueue(c *Configuration, depth int) error {
	if w.opts.MaxStates > 0 && len(w.visited) >= w.opts.MaxStates {
		return fmt.Errorf("%w: %d configurations visited", ErrStateLimit, len(w.visited))
	}
	w.visited[c.key] = struct{}{}
	w.res.Stats.Visited++
	w.queue = append(w.queue, queueItem{conf: c, depth: depth})
	if len(w.queue) > w.res.Stats.MaxFrontier {
		w.res.Stats.MaxFrontier = len(w.queue)
	}
	return nil
}

// dequeue pops the earliest enqueued item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue[0] = queueItem{}
	w.queue = w.queue[1:]
	w.res.Stats.Depth = item.depth
	return item
}
