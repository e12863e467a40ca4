// Package config loads the spacedeck TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is looked up when no config file is given. Its absence is not
// an error.
const DefaultPath = "spacedeck.toml"

type Server struct {
	Addr string `toml:"addr"`
}

type Paths struct {
	PublicDir string `toml:"public_dir"`
	// DeckFile is a YAML deck. Empty selects the built-in workshop deck.
	DeckFile string `toml:"deck_file"`
	// RepoRoot is where `prepare` copies assets from.
	RepoRoot string `toml:"repo_root"`
}

type Assets struct {
	ProbePath string `toml:"probe_path"`
	// BaseURL switches probes and fetches to a running web server instead
	// of the public directory.
	BaseURL string `toml:"base_url"`
}

type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

type Config struct {
	Server  Server  `toml:"server"`
	Paths   Paths   `toml:"paths"`
	Assets  Assets  `toml:"assets"`
	Logging Logging `toml:"logging"`
}

func Default() Config {
	return Config{
		Server: Server{Addr: ":8080"},
		Paths: Paths{
			PublicDir: "./public",
			RepoRoot:  ".",
		},
		Assets: Assets{ProbePath: "/prints/github.png"},
		Logging: Logging{
			Level:  "info",
			Format: FormatAuto,
		},
	}
}

// Load reads path on top of the defaults. An empty path tries DefaultPath
// and falls back to the defaults if it does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Assets.BaseURL = strings.TrimRight(strings.TrimSpace(c.Assets.BaseURL), "/")
	if c.Logging.Format == "" {
		c.Logging.Format = FormatAuto
	}
}
