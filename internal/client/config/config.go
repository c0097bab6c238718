// Package config loads runtime settings for the PartsQuest CLI. Sources are
// applied in order: built-in defaults, then a JSON file (if given via
// -c/-config), then command-line flags. Later sources win.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the CLI.
//
// Fields:
//   - APIBaseURL: base URL of the PartsQuest backend.
//   - HTTPTimeout: per-request timeout applied to every backend call.
//   - TokenFile: path of the file persisting the bearer token.
type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	TokenFile   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://partsquest-backend-production.onrender.com"
	c.HTTPTimeout = 15 * time.Second
	c.TokenFile = defaultTokenFile()
}

func defaultTokenFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "partsquest", "token")
	}
	return filepath.Join(".partsquest", "token")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
