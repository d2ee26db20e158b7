package config

import (
	"encoding/json"
	"os"

	"github.com/vaultdesk/vaultdesk/internal/flagx"
	"github.com/vaultdesk/vaultdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "5s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	BackendAddr string         `json:"backend_addr"`
	PrefsPath   string         `json:"prefs_path"`
	DialTimeout timex.Duration `json:"dial_timeout"`
	LogLevel    string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; with neither present nothing is
// loaded. Fields absent from the JSON keep their current values. Panics on
// read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendAddr != "" {
		cfg.BackendAddr = jc.BackendAddr
	}
	if jc.PrefsPath != "" {
		cfg.PrefsPath = jc.PrefsPath
	}
	if jc.DialTimeout.Duration != 0 {
		cfg.DialTimeout = jc.DialTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
