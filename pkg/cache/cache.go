// Package cache stores solved puzzles so that repeated queries skip the search.
//
// A [Cache] is a byte-oriented key/value store with optional expiry. The
// package ships several backends:
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance
//   - [MongoCache]: a MongoDB collection
//
// Keys are produced by a [Keyer] from the peg contents of the source and
// target configurations, never from their lineage, so equal puzzles share
// one entry.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values. Solutions never go stale, so the TTL only
// bounds disk and memory use.
const (
	// TTLSolution is how long a solved (or proven unsolvable) puzzle is kept.
	TTLSolution = 30 * 24 * time.Hour
)

// Cache is a key/value store for serialized results.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the data stored under key. The boolean is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}

// SolutionKeyOpts holds the search options that influence a cached result.
type SolutionKeyOpts struct {
	MaxStates int `json:"max_states,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// SolutionKey returns the key for the search from source to target.
	// source and target are the printable forms of the two configurations.
	SolutionKey(source, target string, opts SolutionKeyOpts) string
}

// DefaultKeyer produces keys of the form "solution:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolutionKey hashes source, target and opts into a single key.
func (DefaultKeyer) SolutionKey(source, target string, opts SolutionKeyOpts) string {
	return hashKey("solution", source, target, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = DefaultKeyer{}
