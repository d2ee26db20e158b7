package config

import "time"

// Config holds runtime settings for the VaultDesk client.
//
// Fields:
//   - BackendAddr: host:port of the backend bridge endpoint.
//   - PrefsPath: location of the device-local preference database.
//   - DialTimeout: how long to wait for the initial backend connection.
//   - LogLevel: minimum level for structured logs.
type Config struct {
	BackendAddr string
	PrefsPath   string
	DialTimeout time.Duration
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendAddr = "127.0.0.1:50071"
	c.PrefsPath = "vaultdesk-prefs.db"
	c.DialTimeout = 5 * time.Second
	c.LogLevel = "info"
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
