package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"

	scerrors "github.com/matzehuels/scoreline/pkg/errors"
)

// Environment variables read by ApplyEnv.
const (
	EnvAddr      = "SCORELINE_ADDR"
	EnvRedisURL  = "SCORELINE_REDIS_URL"
	EnvCacheTTL  = "SCORELINE_CACHE_TTL"
	EnvKeyPrefix = "SCORELINE_KEY_PREFIX"
)

// LoadDotEnv loads variables from a .env file (".env" when path is empty)
// without overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	var err error
	if path == "" {
		err = godotenv.Load()
	} else {
		err = godotenv.Load(path)
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return scerrors.Wrap(scerrors.ErrCodeInvalidConfig, err, "load .env")
	}
	return nil
}

// ApplyEnv overrides server settings from the environment. Unparseable
// durations are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := getenv(EnvRedisURL); v != "" {
		c.Server.RedisURL = v
	}
	if v := getenv(EnvKeyPrefix); v != "" {
		c.Server.KeyPrefix = v
	}
	if v := getenv(EnvCacheTTL); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Server.CacheTTL = Duration{d}
		}
	}
}
