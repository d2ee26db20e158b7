package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags set", args: []string{"cmd", "-a", "127.0.0.1:9090", "-p", "/tmp/prefs.db", "-t", "10", "-l", "debug"},
			expected: &Config{BackendAddr: "127.0.0.1:9090", PrefsPath: "/tmp/prefs.db", DialTimeout: 10 * time.Second, LogLevel: "debug"}},
		{name: "no flags keep current values", args: []string{"cmd"},
			expected: &Config{}},
		{name: "incorrect dial timeout", args: []string{"cmd", "-a", "127.0.0.1:9090", "-t", "abc"},
			expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
