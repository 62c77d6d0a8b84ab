// Package config handles configuration for the console: defaults, an
// optional JSON file, and command-line flags, in that precedence order.
package config

// Config holds runtime settings for the console.
//
// Fields:
//   - ServerBaseURL: base URL of the user-management API, including the
//     /api prefix.
//   - StateFile: path of the local SQLite database holding the persisted
//     session.
type Config struct {
	ServerBaseURL string
	StateFile     string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/api"
	c.StateFile = "userdesk.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
