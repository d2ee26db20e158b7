package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/vaultdesk/vaultdesk/internal/bridge"
	"github.com/vaultdesk/vaultdesk/internal/buildinfo"
	"github.com/vaultdesk/vaultdesk/internal/client/cli"
	"github.com/vaultdesk/vaultdesk/internal/client/config"
	"github.com/vaultdesk/vaultdesk/internal/client/prefs"
	"github.com/vaultdesk/vaultdesk/internal/client/rpc"
	"github.com/vaultdesk/vaultdesk/internal/logging"
)

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	conn, err := bridge.Dial(cfg.BackendAddr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer conn.Close()

	client := rpc.New(conn)

	// the gRPC client connects lazily; probe within the configured timeout
	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	err = client.Ping(pingCtx)
	cancel()
	if err != nil {
		log.Fatalf("backend unreachable at %s: %v", cfg.BackendAddr, err)
	}

	store, err := prefs.Open(ctx, cfg.PrefsPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer store.Close()

	app := cli.NewApp(cfg, client, store, logger)
	app.Run(ctx)
}
