// Package config loads scoreline settings.
//
// Settings come from three layers, later layers winning:
//
//  1. Built-in defaults ([Default])
//  2. A TOML file, by default $XDG_CONFIG_HOME/scoreline/config.toml
//  3. Environment variables, optionally from a .env file (server settings only)
//
// Command-line flags are applied on top by the CLI.
//
// # File Format
//
//	[defaults]
//	page_length = 12
//	doc_length = 3.625
//	scheme = "bifold"
//	offsets = ""
//
//	[canvas]
//	width = 800
//	height = 200
//
//	[presets]
//	page_lengths = [11, 12, 13, 17, 18, 19, 26]
//	doc_lengths = [3.625, 4, 4.25, 5.5, 8.5, 11]
//
//	[server]
//	addr = ":8080"
//	redis_url = "redis://localhost:6379/0"
//	cache_ttl = "24h"
//	key_prefix = "scoreline:"
//
// The gutter is fixed and cannot be configured.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	scerrors "github.com/matzehuels/scoreline/pkg/errors"
	"github.com/matzehuels/scoreline/pkg/imposition"
	"github.com/matzehuels/scoreline/pkg/render"
)

// appName names the config directory.
const appName = "scoreline"

// Config is the full settings tree.
type Config struct {
	Defaults Defaults      `toml:"defaults"`
	Canvas   render.Canvas `toml:"canvas"`
	Presets  Presets       `toml:"presets"`
	Server   Server        `toml:"server"`
}

// Defaults pre-fill the calculation inputs.
type Defaults struct {
	PageLength float64 `toml:"page_length"`
	DocLength  float64 `toml:"doc_length"`
	Scheme     string  `toml:"scheme"`
	Offsets    string  `toml:"offsets"`
}

// Presets are the quick-select values offered by the form and the API.
type Presets struct {
	PageLengths []float64 `toml:"page_lengths"`
	DocLengths  []float64 `toml:"doc_lengths"`
}

// Server configures the HTTP API.
type Server struct {
	Addr      string   `toml:"addr"`
	RedisURL  string   `toml:"redis_url"`
	CacheTTL  Duration `toml:"cache_ttl"`
	KeyPrefix string   `toml:"key_prefix"`
}

// Duration is a time.Duration written as "90s" or "24h" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			PageLength: 12,
			DocLength:  3.625,
			Scheme:     imposition.Bifold.String(),
		},
		Canvas: render.DefaultCanvas,
		Presets: Presets{
			PageLengths: []float64{11, 12, 13, 17, 18, 19, 26},
			DocLengths:  []float64{3.625, 4, 4.25, 5.5, 8.5, 11},
		},
		Server: Server{
			Addr:      ":8080",
			CacheTTL:  Duration{24 * time.Hour},
			KeyPrefix: appName + ":",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/scoreline/config.toml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path over the defaults. An empty path means
// DefaultPath, which may be absent; an explicit path must exist. Environment
// overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, scerrors.Wrap(scerrors.ErrCodeInvalidConfig, err, "locate config file")
		}
		path = p
	}

	if err := cfg.decodeFile(path); err != nil {
		missing := errors.Is(err, fs.ErrNotExist)
		if missing && explicit {
			return nil, scerrors.Wrap(scerrors.ErrCodeInvalidConfig, err, "read config")
		}
		if !missing {
			return nil, err
		}
	}

	if err := LoadDotEnv(""); err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return scerrors.Wrap(scerrors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return scerrors.New(scerrors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := scerrors.ValidateCanvas(c.Canvas.Width, c.Canvas.Height); err != nil {
		return scerrors.Wrap(scerrors.ErrCodeInvalidConfig, err, "[canvas]")
	}
	if _, err := imposition.ParseKind(c.Defaults.Scheme); err != nil {
		return scerrors.Wrap(scerrors.ErrCodeInvalidConfig, err, "[defaults] scheme")
	}
	for _, v := range c.Defaults.lengths() {
		if err := scerrors.ValidateLength(v.name, v.value); err != nil {
			return scerrors.Wrap(scerrors.ErrCodeInvalidConfig, err, "[defaults]")
		}
	}
	for _, v := range c.Presets.PageLengths {
		if err := scerrors.ValidateLength("page length preset", v); err != nil {
			return scerrors.Wrap(scerrors.ErrCodeInvalidConfig, err, "[presets]")
		}
	}
	for _, v := range c.Presets.DocLengths {
		if err := scerrors.ValidateLength("document length preset", v); err != nil {
			return scerrors.Wrap(scerrors.ErrCodeInvalidConfig, err, "[presets]")
		}
	}
	if c.Server.CacheTTL.Duration < 0 {
		return scerrors.New(scerrors.ErrCodeInvalidConfig, "[server] cache_ttl must not be negative")
	}
	return nil
}

type namedLength struct {
	name  string
	value float64
}

func (d Defaults) lengths() []namedLength {
	return []namedLength{
		{"default page length", d.PageLength},
		{"default document length", d.DocLength},
	}
}
