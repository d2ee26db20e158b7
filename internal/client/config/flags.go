package config

import (
	"flag"
	"os"
	"time"

	"github.com/vaultdesk/vaultdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend bridge (default from Config)
//	-p string   path to the preference database (default from Config)
//	-t int      backend dial timeout in seconds (default from Config)
//	-l string   log level (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BackendAddr, "a", cfg.BackendAddr, "address and port to access the backend")
	fs.StringVar(&cfg.PrefsPath, "p", cfg.PrefsPath, "path to the preference database")
	dialTimeout := fs.Int("t", int(cfg.DialTimeout.Seconds()), "backend dial timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.DialTimeout = time.Duration(*dialTimeout) * time.Second
}
