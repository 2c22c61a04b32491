package cache

// ScopedKeyer wraps a Keyer with a prefix so that several tools, or several
// versions of the solver, can share one Redis or MongoDB backend without
// reading each other's entries.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "hanoi:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SolutionKey generates a prefixed key for solution caching.
func (k *ScopedKeyer) SolutionKey(source, target string, opts SolutionKeyOpts) string {
	return k.prefix + k.inner.SolutionKey(source, target, opts)
}
