package puzzle

import (
	"fmt"

	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// Puzzle is a source and a target configuration of the same shape.
type Puzzle struct {
	Source *hanoi.Configuration
	Target *hanoi.Configuration
}

// New pairs source and target after checking that both exist and have the
// same number of pegs and discs.
func New(source, target *hanoi.Configuration) (*Puzzle, error) {
	if source == nil || target == nil {
		return nil, perrors.New(perrors.ErrCodeInvalidPuzzle, "puzzle needs both a source and a target")
	}
	if !source.SameShape(target) {
		return nil, perrors.New(perrors.ErrCodeInvalidPuzzle,
			"source has %d pegs and %d discs, target has %d pegs and %d discs",
			source.Pegs(), source.Discs(), target.Pegs(), target.Discs())
	}
	return &Puzzle{Source: source, Target: target}, nil
}

// Pegs returns the peg count k.
func (p *Puzzle) Pegs() int { return p.Source.Pegs() }

// Discs returns the disc count n.
func (p *Puzzle) Discs() int { return p.Source.Discs() }

// String summarizes the puzzle dimensions.
func (p *Puzzle) String() string {
	return fmt.Sprintf("%d discs on %d pegs", p.Discs(), p.Pegs())
}
