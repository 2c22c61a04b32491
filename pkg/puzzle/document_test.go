package puzzle

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

func classic(t *testing.T) *Puzzle {
	t.Helper()
	p, err := Read(strings.NewReader("3 3 1 1 1 3 3 3"))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func samePuzzle(t *testing.T, got, want *Puzzle) {
	t.Helper()
	if !got.Source.Equal(want.Source) {
		t.Errorf("source = %v, want %v", got.Source, want.Source)
	}
	if !got.Target.Equal(want.Target) {
		t.Errorf("target = %v, want %v", got.Target, want.Target)
	}
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		code    perrors.Code
		wantErr bool
	}{
		{
			name:  "Explicit",
			input: `{"pegs": 3, "source": [[2,1,0],[],[]], "target": [[],[],[2,1,0]]}`,
			want:  "[] [] [2 1 0]",
		},
		{
			name:  "PaddedPegs",
			input: `{"pegs": 4, "source": [[1,0]], "target": [[],[],[],[1,0]]}`,
			want:  "[] [] [] [1 0]",
		},
		{
			name:  "ImplicitPegs",
			input: `{"source": [[0],[]], "target": [[],[0]]}`,
			want:  "[] [0]",
		},
		{
			name:    "Malformed",
			input:   `{"pegs": 3, "source": [`,
			code:    perrors.ErrCodeInvalidInput,
			wantErr: true,
		},
		{
			name:    "TooManyPegLists",
			input:   `{"pegs": 1, "source": [[0],[]], "target": [[0]]}`,
			code:    perrors.ErrCodeInvalidPuzzle,
			wantErr: true,
		},
		{
			name:    "BadStacking",
			input:   `{"pegs": 2, "source": [[0,1],[]], "target": [[1,0],[]]}`,
			code:    perrors.ErrCodeInvalidPuzzle,
			wantErr: true,
		},
		{
			name:    "DiscCountMismatch",
			input:   `{"pegs": 2, "source": [[1,0],[]], "target": [[0],[]]}`,
			code:    perrors.ErrCodeInvalidPuzzle,
			wantErr: true,
		},
		{
			name:    "NoDiscs",
			input:   `{"pegs": 2, "source": [], "target": []}`,
			code:    perrors.ErrCodeInvalidPuzzle,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ReadJSON(strings.NewReader(tt.input))
			if tt.wantErr {
				if !perrors.Is(err, tt.code) {
					t.Fatalf("ReadJSON() error = %v, want code %s", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadJSON() error: %v", err)
			}
			if got := p.Target.String(); got != tt.want {
				t.Errorf("target = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	want := classic(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, want); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	samePuzzle(t, got, want)
}

func TestReadTOML(t *testing.T) {
	input := `
pegs = 3
source = [[2, 1, 0], [], []]
target = [[], [2, 1, 0], []]
`
	p, err := ReadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}
	if got := p.Target.String(); got != "[] [2 1 0] []" {
		t.Errorf("target = %q", got)
	}
}

func TestReadTOMLUnknownKey(t *testing.T) {
	input := `
pegs = 3
source = [[0], [], []]
targte = [[], [], [0]]
`
	_, err := ReadTOML(strings.NewReader(input))
	if !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("ReadTOML() error = %v, want %s", err, perrors.ErrCodeInvalidInput)
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	want := classic(t)

	var buf bytes.Buffer
	if err := WriteTOML(&buf, want); err != nil {
		t.Fatalf("WriteTOML() error: %v", err)
	}
	got, err := ReadTOML(&buf)
	if err != nil {
		t.Fatalf("ReadTOML() error: %v\n%s", err, buf.String())
	}
	samePuzzle(t, got, want)
}

func TestLoadSave(t *testing.T) {
	want := classic(t)
	dir := t.TempDir()

	for _, name := range []string{"p.json", "p.toml", "p.txt", "p.in"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, want); err != nil {
				t.Fatalf("Save() error: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			samePuzzle(t, got, want)
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !perrors.Is(err, perrors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %s", err, perrors.ErrCodeFileNotFound)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("3 3 1 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("Load() error = %v, want %s", err, perrors.ErrCodeInvalidInput)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]string{
		"a.json":  FormatJSON,
		"a.JSON":  FormatJSON,
		"a.toml":  FormatTOML,
		"a.txt":   FormatText,
		"a":       FormatText,
		"dir/a.b": FormatText,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestSolution(t *testing.T) {
	path := hanoi.Path{{From: 0, To: 2}, {From: 1, To: 0}}
	s := NewSolution(true, path)
	if s.Count != 2 || s.Moves[0] != (Move{From: 1, To: 3}) {
		t.Errorf("NewSolution() = %+v", s)
	}

	data, err := MarshalSolution(s)
	if err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalSolution(data)
	if err != nil {
		t.Fatalf("UnmarshalSolution() error: %v", err)
	}
	if !got.Found || got.Path()[1] != path[1] {
		t.Errorf("round trip = %+v", got)
	}
}

func TestUnmarshalSolutionRejectsInconsistent(t *testing.T) {
	tests := map[string]string{
		"CountMismatch":  `{"found": true, "count": 2, "moves": [{"from": 1, "to": 2}]}`,
		"UnsolvedMoves":  `{"found": false, "count": 1, "moves": [{"from": 1, "to": 2}]}`,
		"MalformedInput": `{"found":`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := UnmarshalSolution([]byte(input)); err == nil {
				t.Error("UnmarshalSolution() should fail")
			}
		})
	}
}

func TestUnsolvedSolutionDiffersFromEmpty(t *testing.T) {
	none := NewSolution(false, nil)
	empty := NewSolution(true, hanoi.Path{})
	if none.Found == empty.Found {
		t.Error("unsolved and zero-move solutions must be distinguishable")
	}
}
