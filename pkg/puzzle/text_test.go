package puzzle

import (
	"bytes"
	"strings"
	"testing"

	perrors "github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantSource string
		wantTarget string
	}{
		{
			name:       "Classic",
			input:      "3 3\n1 1 1\n3 3 3\n",
			wantSource: "[2 1 0] [] []",
			wantTarget: "[] [] [2 1 0]",
		},
		{
			name:       "Mixed",
			input:      "4 4 4 2 4 1 1 1 1 4",
			wantSource: "[3] [1] [] [2 0]",
			wantTarget: "[2 1 0] [] [] [3]",
		},
		{
			name:       "TrailingTokensIgnored",
			input:      "1 2\n1\n2\nextra",
			wantSource: "[0] []",
			wantTarget: "[] [0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if got := p.Source.String(); got != tt.wantSource {
				t.Errorf("source = %q, want %q", got, tt.wantSource)
			}
			if got := p.Target.String(); got != tt.wantTarget {
				t.Errorf("target = %q, want %q", got, tt.wantTarget)
			}
		})
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  perrors.Code
	}{
		{"Empty", "", perrors.ErrCodeInvalidInput},
		{"MissingPegCount", "3", perrors.ErrCodeInvalidInput},
		{"NotInteger", "3 x", perrors.ErrCodeInvalidInput},
		{"ShortSource", "3 3 1 1", perrors.ErrCodeInvalidInput},
		{"ShortTarget", "3 3 1 1 1 3 3", perrors.ErrCodeInvalidInput},
		{"PegZero", "2 3 0 1 1 1", perrors.ErrCodeInvalidInput},
		{"PegTooLarge", "2 3 1 1 4 1", perrors.ErrCodeInvalidInput},
		{"NoDiscs", "0 3", perrors.ErrCodeInvalidPuzzle},
		{"NoPegs", "2 0", perrors.ErrCodeInvalidPuzzle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Read() should fail")
			}
			if !perrors.Is(err, tt.code) {
				t.Errorf("Read() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestWriteTextRoundTrip(t *testing.T) {
	input := "4 3\n1 2 3 1\n3 3 3 3\n"
	p, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, p); err != nil {
		t.Fatalf("WriteText() error: %v", err)
	}
	if buf.String() != input {
		t.Errorf("WriteText() = %q, want %q", buf.String(), input)
	}
}

func TestWriteMoves(t *testing.T) {
	tests := []struct {
		name string
		path hanoi.Path
		want string
	}{
		{"Empty", hanoi.Path{}, "0\n"},
		{"Single", hanoi.Path{{From: 0, To: 1}}, "1\n1 2\n"},
		{"Several", hanoi.Path{{From: 0, To: 2}, {From: 0, To: 1}, {From: 2, To: 1}}, "3\n1 3\n1 2\n3 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteMoves(&buf, tt.path); err != nil {
				t.Fatalf("WriteMoves() error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteMoves() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestNewShapeMismatch(t *testing.T) {
	a, _ := hanoi.FromAssignment(3, []int{0, 0})
	b, _ := hanoi.FromAssignment(4, []int{0, 0})
	if _, err := New(a, b); !perrors.Is(err, perrors.ErrCodeInvalidPuzzle) {
		t.Errorf("New() error = %v, want %s", err, perrors.ErrCodeInvalidPuzzle)
	}
	if _, err := New(a, nil); err == nil {
		t.Error("New() with nil target should fail")
	}
}
