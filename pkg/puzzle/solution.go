package puzzle

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// Move is the JSON form of a move with 1-based pegs.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Solution is the serialized result of a search.
// Found is false when the target is unreachable; Count and Moves are then
// zero and empty, which is distinct from a found zero-move solution.
type Solution struct {
	Found bool   `json:"found"`
	Count int    `json:"count"`
	Moves []Move `json:"moves"`
}

// NewSolution converts a path to its serialized form.
func NewSolution(found bool, path hanoi.Path) Solution {
	s := Solution{Found: found, Count: path.Len(), Moves: make([]Move, len(path))}
	for i, m := range path {
		s.Moves[i] = Move{From: m.From + 1, To: m.To + 1}
	}
	return s
}

// Path converts the moves back to 0-based [hanoi.Move] values.
func (s Solution) Path() hanoi.Path {
	p := make(hanoi.Path, len(s.Moves))
	for i, m := range s.Moves {
		p[i] = hanoi.Move{From: m.From - 1, To: m.To - 1}
	}
	return p
}

// MarshalSolution encodes s as compact JSON.
func MarshalSolution(s Solution) ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalSolution decodes a solution and checks that Count matches the
// number of moves.
func UnmarshalSolution(data []byte) (Solution, error) {
	var s Solution
	if err := json.Unmarshal(data, &s); err != nil {
		return Solution{}, fmt.Errorf("decode solution: %w", err)
	}
	if s.Count != len(s.Moves) {
		return Solution{}, fmt.Errorf("decode solution: count %d does not match %d moves", s.Count, len(s.Moves))
	}
	if !s.Found && s.Count > 0 {
		return Solution{}, fmt.Errorf("decode solution: unsolved result carries %d moves", s.Count)
	}
	return s, nil
}

// WriteSolutionJSON writes v (a Solution or a struct embedding one) as
// indented JSON.
func WriteSolutionJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
