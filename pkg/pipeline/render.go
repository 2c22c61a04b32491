package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
	"github.com/matzehuels/hanoi/pkg/observability"
	"github.com/matzehuels/hanoi/pkg/puzzle"
	"github.com/matzehuels/hanoi/pkg/render/nodelink"
	"github.com/matzehuels/hanoi/pkg/render/pegs"
)

// Graph output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// GraphFormats lists the formats accepted by [Runner.Graph].
var GraphFormats = []string{FormatDOT, FormatSVG}

// GraphOptions configures [Runner.Explore] and [Runner.Graph].
type GraphOptions struct {
	// MaxStates bounds the explored tree. 0 selects DefaultGraphStates.
	MaxStates int

	// Detailed adds depth and move to node labels.
	Detailed bool

	// Format is FormatDOT or FormatSVG. Empty selects FormatSVG.
	Format string
}

// Exploration is a recorded search tree.
type Exploration struct {
	Tree *nodelink.Tree

	// Outcome is meaningful only when Truncated is false.
	Outcome hanoi.Outcome

	// Truncated is true when the state bound stopped the search early.
	Truncated bool
}

// Explore runs the search for p while recording every dequeued
// configuration. Hitting the state bound is not an error: the partial tree
// is returned with Truncated set.
func (r *Runner) Explore(ctx context.Context, p *puzzle.Puzzle, opts GraphOptions) (*Exploration, error) {
	limit := opts.MaxStates
	if limit < 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "max states must not be negative, got %d", limit)
	}
	if limit == 0 {
		limit = DefaultGraphStates
	}

	rec := nodelink.NewRecorder()
	start := time.Now()
	observability.Search().OnSearchStart(ctx, p.Pegs(), p.Discs())
	out, err := hanoi.Search(ctx, p.Source, p.Target, hanoi.Options{MaxStates: limit, OnVisit: rec.Visit})

	ex := &Exploration{Tree: rec.Tree()}
	ev := observability.SearchEvent{Expanded: ex.Tree.Len(), Duration: time.Since(start)}
	switch {
	case errors.Is(err, hanoi.ErrStateLimit):
		ex.Truncated = true
	case err != nil:
		ev.Err = err
		observability.Search().OnSearchComplete(ctx, ev)
		return nil, searchError(err, limit)
	default:
		ex.Outcome = out.Outcome
		ev.Outcome = out.Outcome.String()
		ev.Moves = out.Path().Len()
		rec.MarkPath(out.Target)
	}
	observability.Search().OnSearchComplete(ctx, ev)

	r.Logger.Info("explored",
		"nodes", ex.Tree.Len(),
		"depth", ex.Tree.Depth(),
		"truncated", ex.Truncated,
		"duration", ev.Duration)
	return ex, nil
}

// Graph explores p and renders the tree in opts.Format.
func (r *Runner) Graph(ctx context.Context, p *puzzle.Puzzle, opts GraphOptions) ([]byte, *Exploration, error) {
	if opts.Format == "" {
		opts.Format = FormatSVG
	}
	if err := perrors.ValidateFormat(opts.Format, GraphFormats...); err != nil {
		return nil, nil, err
	}

	ex, err := r.Explore(ctx, p, opts)
	if err != nil {
		return nil, nil, err
	}

	dot := nodelink.ToDOT(ex.Tree, nodelink.Options{Detailed: opts.Detailed})
	if opts.Format == FormatDOT {
		return []byte(dot), ex, nil
	}
	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, nil, fmt.Errorf("render graph: %w", err)
	}
	return svg, ex, nil
}

// RenderPuzzleSVG draws the source and target of p side by side.
func RenderPuzzleSVG(p *puzzle.Puzzle) []byte {
	return pegs.SVG([]pegs.Frame{
		{Title: "source", Config: p.Source},
		{Title: "target", Config: p.Target},
	})
}
