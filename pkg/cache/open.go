package cache

import (
	"context"
	"fmt"
	"strings"
)

// Backend names accepted by [Open].
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Backends lists the accepted backend names.
var Backends = []string{BackendFile, BackendRedis, BackendMongo, BackendNone}

// Config selects and parameterizes a backend.
type Config struct {
	// Backend is one of [Backends]. Empty means [BackendFile].
	Backend string

	// Dir is the directory for the file backend.
	Dir string

	// URL is the connection string for the redis and mongo backends.
	URL string
}

// Open builds the cache described by cfg.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendFile:
		if cfg.Dir == "" {
			return nil, fmt.Errorf("file cache: no directory configured")
		}
		return NewFileCache(cfg.Dir)
	case BackendRedis:
		if cfg.URL == "" {
			return nil, fmt.Errorf("redis cache: no url configured")
		}
		return NewRedisCache(ctx, cfg.URL, DefaultRedisPrefix)
	case BackendMongo:
		if cfg.URL == "" {
			return nil, fmt.Errorf("mongo cache: no url configured")
		}
		return NewMongoCache(ctx, cfg.URL, DefaultMongoDatabase)
	case BackendNone:
		return NewNullCache(), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownBackend, cfg.Backend, strings.Join(Backends, ", "))
	}
}
