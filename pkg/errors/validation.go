package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// Limits on puzzle dimensions accepted from untrusted input.
const (
	// MaxPegs bounds the peg count read from a puzzle.
	MaxPegs = 64

	// MaxDiscs bounds the disc count read from a puzzle.
	MaxDiscs = 64
)

// ValidateDimensions checks the disc count n and peg count k of a puzzle.
// At least one disc and one peg are required.
func ValidateDimensions(n, k int) error {
	if n < 1 {
		return New(ErrCodeInvalidPuzzle, "disc count must be at least 1, got %d", n)
	}
	if n > MaxDiscs {
		return New(ErrCodeInvalidPuzzle, "disc count %d exceeds maximum of %d", n, MaxDiscs)
	}
	if k < 1 {
		return New(ErrCodeInvalidPuzzle, "peg count must be at least 1, got %d", k)
	}
	if k > MaxPegs {
		return New(ErrCodeInvalidPuzzle, "peg count %d exceeds maximum of %d", k, MaxPegs)
	}
	return nil
}

// ValidatePeg checks a 1-based peg number against the peg count k.
func ValidatePeg(peg, k int) error {
	if peg < 1 || peg > k {
		return New(ErrCodeInvalidInput, "peg %d out of range 1..%d", peg, k)
	}
	return nil
}

// ValidatePath validates an input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateExtension validates path and checks that its extension is one of
// allowed (compared case-insensitively, without the leading dot).
func ValidateExtension(path string, allowed ...string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !slices.Contains(allowed, ext) {
		return New(ErrCodeInvalidFormat, "unsupported file extension %q (want one of %s)", ext, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateFormat checks an output format name against the allowed set.
func ValidateFormat(format string, allowed ...string) error {
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}
