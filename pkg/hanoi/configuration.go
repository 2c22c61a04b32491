package hanoi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Sentinel errors for configuration construction and moves.
var (
	// ErrInvalidConfiguration is returned when pegs violate the stacking or
	// disc-uniqueness invariants.
	ErrInvalidConfiguration = errors.New("hanoi: invalid configuration")

	// ErrIllegalMove is returned by [Configuration.Apply] for a move that the
	// size rule forbids or that references a missing peg.
	ErrIllegalMove = errors.New("hanoi: illegal move")
)

// Move relocates the top disc of peg From onto peg To.
// Peg indexes are 0-based; [Move.String] renders them 1-based.
type Move struct {
	From int
	To   int
}

// String formats the move as "<from> <to>" with 1-based peg numbers.
func (m Move) String() string {
	return strconv.Itoa(m.From+1) + " " + strconv.Itoa(m.To+1)
}

// Configuration is an immutable assignment of discs to pegs.
//
// Each peg is stored bottom-to-top. A Configuration built by a move also keeps
// a pointer to the configuration it was derived from and the move used.
type Configuration struct {
	pegs   [][]int
	discs  int
	parent *Configuration
	move   Move
	key    string
}

// New creates a configuration from per-peg stacks listed bottom-to-top.
// The input slices are copied. New returns [ErrInvalidConfiguration] when a
// disc appears twice, a disc id is outside 0..n-1, or a stack is not strictly
// decreasing from bottom to top.
func New(pegs [][]int) (*Configuration, error) {
	c := &Configuration{pegs: make([][]int, len(pegs))}
	for i, p := range pegs {
		c.pegs[i] = append([]int(nil), p...)
		c.discs += len(p)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.key = encodeKey(c.pegs)
	return c, nil
}

// FromAssignment builds a configuration with k pegs where disc i sits on peg
// assignment[i] (0-based). Discs sharing a peg are stacked largest first, so
// the result always satisfies the size rule.
func FromAssignment(k int, assignment []int) (*Configuration, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: need at least one peg, got %d", ErrInvalidConfiguration, k)
	}
	pegs := make([][]int, k)
	for disc := len(assignment) - 1; disc >= 0; disc-- {
		p := assignment[disc]
		if p < 0 || p >= k {
			return nil, fmt.Errorf("%w: disc %d assigned to peg %d of %d", ErrInvalidConfiguration, disc, p+1, k)
		}
		pegs[p] = append(pegs[p], disc)
	}
	c := &Configuration{pegs: pegs, discs: len(assignment)}
	c.key = encodeKey(c.pegs)
	return c, nil
}

// Pegs returns the number of pegs.
func (c *Configuration) Pegs() int { return len(c.pegs) }

// Discs returns the number of discs.
func (c *Configuration) Discs() int { return c.discs }

// Peg returns a copy of peg i, bottom-to-top.
func (c *Configuration) Peg(i int) []int {
	return append([]int{}, c.pegs[i]...)
}

// Stacks returns a deep copy of all pegs, bottom-to-top.
func (c *Configuration) Stacks() [][]int {
	out := make([][]int, len(c.pegs))
	for i := range c.pegs {
		out[i] = c.Peg(i)
	}
	return out
}

// Top returns the top disc of peg i and false when the peg is empty.
func (c *Configuration) Top(i int) (int, bool) {
	p := c.pegs[i]
	if len(p) == 0 {
		return 0, false
	}
	return p[len(p)-1], true
}

// Assignment returns, for each disc, the 0-based peg it sits on.
func (c *Configuration) Assignment() []int {
	out := make([]int, c.discs)
	for i, p := range c.pegs {
		for _, d := range p {
			out[d] = i
		}
	}
	return out
}

// Parent returns the configuration this one was derived from, or nil for a
// configuration built directly with [New] or [FromAssignment].
func (c *Configuration) Parent() *Configuration { return c.parent }

// Move returns the move that produced c from its parent.
// The boolean is false when c has no parent.
func (c *Configuration) Move() (Move, bool) {
	return c.move, c.parent != nil
}

// Key returns a compact encoding of the peg contents. Two configurations have
// the same key exactly when they are [Configuration.Equal].
func (c *Configuration) Key() string { return c.key }

// Hash returns a 64-bit hash of [Configuration.Key].
func (c *Configuration) Hash() uint64 { return xxhash.Sum64String(c.key) }

// Equal reports whether c and other hold identical pegs.
// Parent and move are ignored.
func (c *Configuration) Equal(other *Configuration) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.key == other.key
}

// SameShape reports whether c and other have the same peg and disc counts.
func (c *Configuration) SameShape(other *Configuration) bool {
	return len(c.pegs) == len(other.pegs) && c.discs == other.discs
}

// Validate checks that every disc 0..n-1 appears exactly once and that every
// peg strictly decreases from bottom to top.
func (c *Configuration) Validate() error {
	seen := make([]bool, c.discs)
	for i, p := range c.pegs {
		for j, d := range p {
			if d < 0 || d >= c.discs {
				return fmt.Errorf("%w: disc %d on peg %d is outside 0..%d", ErrInvalidConfiguration, d, i+1, c.discs-1)
			}
			if seen[d] {
				return fmt.Errorf("%w: disc %d appears more than once", ErrInvalidConfiguration, d)
			}
			seen[d] = true
			if j > 0 && p[j-1] <= d {
				return fmt.Errorf("%w: disc %d rests on smaller disc %d on peg %d", ErrInvalidConfiguration, d, p[j-1], i+1)
			}
		}
	}
	return nil
}

// String renders the pegs bottom-to-top, e.g. "[2 1 0] [] []".
func (c *Configuration) String() string {
	parts := make([]string, len(c.pegs))
	for i, p := range c.pegs {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, " ")
}

// encodeKey writes each peg as a uvarint length followed by its discs.
func encodeKey(pegs [][]int) string {
	buf := make([]byte, 0, 2*len(pegs)+8)
	for _, p := range pegs {
		buf = binary.AppendUvarint(buf, uint64(len(p)))
		for _, d := range p {
			buf = binary.AppendUvarint(buf, uint64(d))
		}
	}
	return string(buf)
}
