package config

import "time"

// Config holds runtime settings for the socli CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, including the /api prefix.
//   - PageSize: items requested per feed/comment page.
//   - RequestTimeout: client-side deadline per request; zero disables it.
//   - DatabasePath: location of the local sqlite store.
type Config struct {
	APIBaseURL     string
	PageSize       int
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.PageSize = 10
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "socli.db"
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
