package config

import "time"

// Config holds runtime settings for the Still Waters CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, without a trailing slash.
//   - DatabasePath: path of the local sqlite database holding session state.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://stillwaters.umbrassi.com/api"
	c.DatabasePath = "stillwaters.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
