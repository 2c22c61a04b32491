package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnknownBackend is returned by [Open] for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown cache backend")

	// ErrUnavailable is returned when a remote backend does not answer.
	ErrUnavailable = errors.New("cache backend unavailable")
)

// backoff controls how remote backends are probed while connecting.
type backoff struct {
	attempts int
	delay    time.Duration // before the second attempt; doubles afterwards
	timeout  time.Duration // per attempt
}

// connectBackoff is used by the Redis and MongoDB constructors. Tests
// shorten it.
var connectBackoff = backoff{attempts: 3, delay: 200 * time.Millisecond, timeout: 2 * time.Second}

// ping calls probe until it succeeds or the attempts run out, and returns the
// last probe error. Cancelling ctx stops the loop with ctx.Err().
func (b backoff) ping(ctx context.Context, probe func(context.Context) error) error {
	var err error
	delay := b.delay
	for i := 0; i < b.attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
		actx, cancel := context.WithTimeout(ctx, b.timeout)
		err = probe(actx)
		cancel()
		if err == nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}
