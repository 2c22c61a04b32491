package puzzle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	perrors "github.com/matzehuels/hanoi/pkg/errors"
)

// File formats recognized by [Load] and [Save].
const (
	FormatText = "txt"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// FormatOf returns the format implied by path's extension.
// Anything other than .json or .toml is treated as token text.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Decode reads a puzzle from r in the given format.
func Decode(r io.Reader, format string) (*Puzzle, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatText, "":
		return Read(r)
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidFormat, "unknown puzzle format %q", format)
	}
}

// Encode writes p to w in the given format.
func Encode(w io.Writer, p *Puzzle, format string) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, p)
	case FormatTOML:
		return WriteTOML(w, p)
	case FormatText, "":
		return WriteText(w, p)
	default:
		return perrors.New(perrors.ErrCodeInvalidFormat, "unknown puzzle format %q", format)
	}
}

// Load reads a puzzle file, choosing the format from its extension.
func Load(path string) (*Puzzle, error) {
	if err := perrors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "puzzle file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p, err := Decode(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Save writes p to path, choosing the format from its extension.
func Save(path string, p *Puzzle) error {
	if err := perrors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(f, p, FormatOf(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
