package puzzle

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// document is the JSON and TOML shape of a puzzle.
type document struct {
	Pegs   int     `json:"pegs,omitempty" toml:"pegs,omitempty"`
	Source [][]int `json:"source" toml:"source"`
	Target [][]int `json:"target" toml:"target"`
}

func toDocument(p *Puzzle) document {
	return document{
		Pegs:   p.Pegs(),
		Source: p.Source.Stacks(),
		Target: p.Target.Stacks(),
	}
}

func (d document) puzzle() (*Puzzle, error) {
	k := d.Pegs
	if k == 0 {
		k = max(len(d.Source), len(d.Target))
	}
	n := 0
	for _, s := range d.Source {
		n += len(s)
	}
	if err := perrors.ValidateDimensions(n, k); err != nil {
		return nil, err
	}

	source, err := d.configuration("source", d.Source, k)
	if err != nil {
		return nil, err
	}
	target, err := d.configuration("target", d.Target, k)
	if err != nil {
		return nil, err
	}
	return New(source, target)
}

func (d document) configuration(name string, stacks [][]int, k int) (*hanoi.Configuration, error) {
	if len(stacks) > k {
		return nil, perrors.New(perrors.ErrCodeInvalidPuzzle, "%s lists %d pegs, puzzle has %d", name, len(stacks), k)
	}
	pegs := make([][]int, k)
	copy(pegs, stacks)
	c, err := hanoi.New(pegs)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidPuzzle, err, "%s configuration", name)
	}
	return c, nil
}

// ReadJSON decodes a puzzle document from r.
//
// ReadJSON returns an error if the JSON is malformed, a peg list is longer
// than "pegs", or a configuration breaks the stacking rules.
func ReadJSON(r io.Reader) (*Puzzle, error) {
	var d document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "decode JSON puzzle")
	}
	return d.puzzle()
}

// WriteJSON encodes p as an indented JSON document.
func WriteJSON(w io.Writer, p *Puzzle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(p)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadTOML decodes a puzzle document from r.
// Unknown keys are rejected so that typos do not silently drop a peg list.
func ReadTOML(r io.Reader) (*Puzzle, error) {
	var d document
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "decode TOML puzzle")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "unknown TOML key %q", undecoded[0].String())
	}
	return d.puzzle()
}

// WriteTOML encodes p as a TOML document.
func WriteTOML(w io.Writer, p *Puzzle) error {
	if err := toml.NewEncoder(w).Encode(toDocument(p)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
