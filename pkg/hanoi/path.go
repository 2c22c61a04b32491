package hanoi

import (
	"fmt"
	"slices"
)

// Path is an ordered sequence of moves from a source to a target.
type Path []Move

// Reconstruct walks parent links from c back to its root and returns the
// moves in execution order. A configuration without a parent yields an
// empty, non-nil path.
func Reconstruct(c *Configuration) Path {
	p := Path{}
	for ; c != nil && c.parent != nil; c = c.parent {
		p = append(p, c.move)
	}
	slices.Reverse(p)
	return p
}

// Len returns the number of moves.
func (p Path) Len() int { return len(p) }

// Replay applies the moves of p to source in order and returns the final
// configuration. The first illegal move stops the replay with an error
// wrapping [ErrIllegalMove].
func Replay(source *Configuration, p Path) (*Configuration, error) {
	steps, err := Steps(source, p)
	if err != nil {
		return nil, err
	}
	return steps[len(steps)-1], nil
}

// Steps replays p from source and returns every intermediate configuration,
// starting with source itself.
func Steps(source *Configuration, p Path) ([]*Configuration, error) {
	out := make([]*Configuration, 0, len(p)+1)
	out = append(out, source)
	c := source
	for i, m := range p {
		next, err := c.Apply(m)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		out = append(out, next)
		c = next
	}
	return out, nil
}
