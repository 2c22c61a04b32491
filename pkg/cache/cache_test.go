package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

var errRefused = errors.New("connection refused")

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	a := k.SolutionKey("[2 1 0] [] []", "[] [] [2 1 0]", SolutionKeyOpts{})
	if !strings.HasPrefix(a, "solution:") || len(a) != len("solution:")+64 {
		t.Errorf("SolutionKey unexpected: %s", a)
	}
	if b := k.SolutionKey("[2 1 0] [] []", "[] [] [2 1 0]", SolutionKeyOpts{}); a != b {
		t.Error("SolutionKey should be deterministic")
	}

	// Swapping source and target is a different search.
	if b := k.SolutionKey("[] [] [2 1 0]", "[2 1 0] [] []", SolutionKeyOpts{}); a == b {
		t.Error("SolutionKey should depend on direction")
	}

	// The state limit can change the outcome, so it is part of the key.
	if b := k.SolutionKey("[2 1 0] [] []", "[] [] [2 1 0]", SolutionKeyOpts{MaxStates: 10}); a == b {
		t.Error("Different SolutionKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "v1:")

	want := "v1:" + inner.SolutionKey("a", "b", SolutionKeyOpts{})
	if got := scoped.SolutionKey("a", "b", SolutionKeyOpts{}); got != want {
		t.Errorf("ScopedKeyer SolutionKey = %s, want %s", got, want)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.SolutionKey("a", "b", SolutionKeyOpts{})
	if !strings.HasPrefix(key, "prefix:solution:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func fastBackoff(t *testing.T) {
	t.Helper()
	prev := connectBackoff
	connectBackoff = backoff{attempts: 3, delay: time.Millisecond, timeout: time.Second}
	t.Cleanup(func() { connectBackoff = prev })
}

func TestPingRetries(t *testing.T) {
	fastBackoff(t)
	ctx := context.Background()

	calls := 0
	err := connectBackoff.ping(ctx, func(context.Context) error {
		calls++
		if calls < 2 {
			return errRefused
		}
		return nil
	})
	if err != nil {
		t.Errorf("ping() should succeed after a retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("probe called %d times, want 2", calls)
	}
}

func TestPingGivesUp(t *testing.T) {
	fastBackoff(t)

	calls := 0
	err := connectBackoff.ping(context.Background(), func(context.Context) error {
		calls++
		return errRefused
	})
	if !errors.Is(err, errRefused) {
		t.Errorf("ping() error = %v, want last probe error", err)
	}
	if calls != 3 {
		t.Errorf("probe called %d times, want 3", calls)
	}
}

func TestPingContextCancel(t *testing.T) {
	fastBackoff(t)
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := connectBackoff.ping(ctx, func(context.Context) error {
		calls++
		cancel()
		return errRefused
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ping() error = %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Errorf("probe called %d times after cancel, want 1", calls)
	}
}

func TestPingAttemptTimeout(t *testing.T) {
	prev := connectBackoff
	connectBackoff = backoff{attempts: 1, delay: time.Millisecond, timeout: 10 * time.Millisecond}
	t.Cleanup(func() { connectBackoff = prev })

	err := connectBackoff.ping(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("ping() error = %v, want per-attempt deadline", err)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open(file) error: %v", err)
	}
	if _, ok := c.(*FileCache); !ok {
		t.Errorf("Open() default backend = %T, want *FileCache", c)
	}
	c.Close()

	c, err = Open(ctx, Config{Backend: "none"})
	if err != nil {
		t.Fatalf("Open(none) error: %v", err)
	}
	if _, ok := c.(NullCache); !ok {
		t.Errorf("Open(none) = %T, want NullCache", c)
	}

	if _, err := Open(ctx, Config{Backend: "memcached"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(memcached) error = %v, want ErrUnknownBackend", err)
	}
	if _, err := Open(ctx, Config{Backend: "file"}); err == nil {
		t.Error("Open(file) without a directory should fail")
	}
	if _, err := Open(ctx, Config{Backend: "redis"}); err == nil {
		t.Error("Open(redis) without a url should fail")
	}
}
