package cli

import (
	"errors"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hanoi/pkg/cache"
	perrors "github.com/matzehuels/hanoi/pkg/errors"
)

// Config is the optional TOML configuration file.
//
//	max_states = 2000000
//
//	[cache]
//	backend = "redis"
//	url = "redis://localhost:6379/0"
//	ttl = "168h"
type Config struct {
	MaxStates int         `toml:"max_states"`
	Cache     CacheConfig `toml:"cache"`
}

// CacheConfig selects the solution cache backend.
type CacheConfig struct {
	Backend string `toml:"backend"`
	URL     string `toml:"url"`
	TTL     string `toml:"ttl"`

	parsedTTL time.Duration
}

func (c CacheConfig) ttl() time.Duration { return c.parsedTTL }

// loadConfig reads the config file at path. A missing file yields the zero
// Config unless required is set.
func loadConfig(path string, required bool) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		if required {
			return Config{}, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, nil
	}
	if err != nil {
		return Config{}, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, perrors.New(perrors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.MaxStates < 0 {
		return perrors.New(perrors.ErrCodeInvalidConfig, "max_states must not be negative, got %d", cfg.MaxStates)
	}
	if cfg.Cache.Backend != "" {
		if err := perrors.ValidateFormat(cfg.Cache.Backend, cache.Backends...); err != nil {
			return perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "cache.backend")
		}
	}
	if cfg.Cache.TTL != "" {
		d, err := time.ParseDuration(cfg.Cache.TTL)
		if err != nil || d < 0 {
			return perrors.New(perrors.ErrCodeInvalidConfig, "cache.ttl: invalid duration %q", cfg.Cache.TTL)
		}
		cfg.Cache.parsedTTL = d
	}
	return nil
}
