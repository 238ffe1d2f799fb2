package server

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Ananya54321/handwritten/pkg/errors"
	"github.com/Ananya54321/handwritten/pkg/handwriting"
)

// Config holds the HTTP server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// MaxTextBytes limits the accepted request text size.
	MaxTextBytes int64 `toml:"max_text_bytes"`

	// DefaultOutputType is used when a request omits output_type.
	DefaultOutputType string `toml:"default_output_type"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", or "none".
	Backend string `toml:"backend"`

	// Dir is the storage directory for the file backend. Empty means
	// the user cache directory.
	Dir string `toml:"dir"`

	// RedisAddr is the address for the redis backend.
	RedisAddr string `toml:"redis_addr"`
}

// Cache backend names accepted in CacheConfig.Backend.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// DefaultConfig returns the server defaults used when no config file is
// given.
func DefaultConfig() Config {
	return Config{
		Addr:              ":8080",
		MaxTextBytes:      1 << 20,
		DefaultOutputType: string(handwriting.DefaultOutputType),
		Cache: CacheConfig{
			Backend:   CacheBackendNone,
			RedisAddr: "localhost:6379",
		},
	}
}

// LoadConfig reads a TOML config file and fills unset fields with
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if _, err := handwriting.ParseOutputType(c.DefaultOutputType); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case CacheBackendFile, CacheBackendRedis, CacheBackendNone:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput,
		"invalid cache backend: %q (supported: file, redis, none)", c.Cache.Backend)
}
