package hanoi

import "fmt"

// Successors returns every configuration reachable from c by one legal move.
//
// Moves are generated for source pegs i = 0..k-1 and, for each, destination
// pegs j = 0..k-1 with j != i. A move is legal when peg i is non-empty and
// peg j is empty or has a larger top disc. Every successor records c as its
// parent. c itself is never modified.
func (c *Configuration) Successors() []*Configuration {
	k := len(c.pegs)
	if k < 2 {
		return nil
	}
	var out []*Configuration
	for i := 0; i < k; i++ {
		disc, ok := c.Top(i)
		if !ok {
			continue
		}
		for j := 0; j < k; j++ {
			if i == j || !c.accepts(j, disc) {
				continue
			}
			out = append(out, c.derive(Move{From: i, To: j}))
		}
	}
	return out
}

// Apply performs a single move and returns the resulting configuration.
// It returns [ErrIllegalMove] when either peg is out of range, the source peg
// is empty, or the moved disc would rest on a smaller one.
func (c *Configuration) Apply(m Move) (*Configuration, error) {
	k := len(c.pegs)
	if m.From < 0 || m.From >= k || m.To < 0 || m.To >= k || m.From == m.To {
		return nil, fmt.Errorf("%w: %s with %d pegs", ErrIllegalMove, m, k)
	}
	disc, ok := c.Top(m.From)
	if !ok {
		return nil, fmt.Errorf("%w: %s from empty peg", ErrIllegalMove, m)
	}
	if !c.accepts(m.To, disc) {
		top, _ := c.Top(m.To)
		return nil, fmt.Errorf("%w: %s puts disc %d on disc %d", ErrIllegalMove, m, disc, top)
	}
	return c.derive(m), nil
}

// accepts reports whether disc may be placed on peg j.
func (c *Configuration) accepts(j, disc int) bool {
	top, ok := c.Top(j)
	return !ok || top > disc
}

// derive builds the child produced by m without checking legality.
// Pegs other than m.From and m.To are shared with c.
func (c *Configuration) derive(m Move) *Configuration {
	pegs := make([][]int, len(c.pegs))
	copy(pegs, c.pegs)

	from := c.pegs[m.From]
	disc := from[len(from)-1]
	pegs[m.From] = from[: len(from)-1 : len(from)-1]

	to := c.pegs[m.To]
	dst := make([]int, len(to)+1)
	copy(dst, to)
	dst[len(to)] = disc
	pegs[m.To] = dst

	return &Configuration{
		pegs:   pegs,
		discs:  c.discs,
		parent: c,
		move:   m,
		key:    encodeKey(pegs),
	}
}
