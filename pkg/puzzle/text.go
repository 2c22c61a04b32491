package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// tokenReader yields whitespace-separated integers.
type tokenReader struct {
	sc    *bufio.Scanner
	count int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

// next returns the next integer; what names the expected value in errors.
func (t *tokenReader) next(what string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "read %s", what)
		}
		return 0, perrors.New(perrors.ErrCodeInvalidInput, "unexpected end of input: missing %s (after %d values)", what, t.count)
	}
	t.count++
	v, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, perrors.New(perrors.ErrCodeInvalidInput, "%s: expected integer, got %q", what, t.sc.Text())
	}
	return v, nil
}

// Read parses a puzzle in token format: "n k", n source pegs, n target pegs.
// Tokens after the target are ignored.
func Read(r io.Reader) (*Puzzle, error) {
	t := newTokenReader(r)

	n, err := t.next("disc count")
	if err != nil {
		return nil, err
	}
	k, err := t.next("peg count")
	if err != nil {
		return nil, err
	}
	if err := perrors.ValidateDimensions(n, k); err != nil {
		return nil, err
	}

	source, err := readConfiguration(t, "source", n, k)
	if err != nil {
		return nil, err
	}
	target, err := readConfiguration(t, "target", n, k)
	if err != nil {
		return nil, err
	}
	return New(source, target)
}

func readConfiguration(t *tokenReader, name string, n, k int) (*hanoi.Configuration, error) {
	assignment := make([]int, n)
	for disc := range assignment {
		peg, err := t.next(fmt.Sprintf("%s peg of disc %d", name, disc))
		if err != nil {
			return nil, err
		}
		if err := perrors.ValidatePeg(peg, k); err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "%s disc %d", name, disc)
		}
		assignment[disc] = peg - 1
	}
	c, err := hanoi.FromAssignment(k, assignment)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidPuzzle, err, "%s configuration", name)
	}
	return c, nil
}

// WriteText writes p in token format, the inverse of [Read].
func WriteText(w io.Writer, p *Puzzle) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", p.Discs(), p.Pegs())
	bw.WriteString(assignmentLine(p.Source) + "\n")
	bw.WriteString(assignmentLine(p.Target) + "\n")
	return bw.Flush()
}

func assignmentLine(c *hanoi.Configuration) string {
	a := c.Assignment()
	parts := make([]string, len(a))
	for i, peg := range a {
		parts[i] = strconv.Itoa(peg + 1)
	}
	return strings.Join(parts, " ")
}

// WriteMoves writes the move count on one line followed by one "from to"
// line per move, using 1-based peg numbers.
func WriteMoves(w io.Writer, path hanoi.Path) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, path.Len())
	for _, m := range path {
		fmt.Fprintln(bw, m)
	}
	return bw.Flush()
}
