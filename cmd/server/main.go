// Package main implements the entry point for the TaskHub API server,
// a multi-user task tracker with token-based authentication.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mkessler/taskhub-api/internal/config"
	"github.com/mkessler/taskhub-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run database migrations instead of the server (up, down, status)")
	flag.Parse()

	cfg, appLogger, err := initialize()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *migrateCmd != "" {
		if err := runMigrations(cfg, *migrateCmd); err != nil {
			appLogger.Error("Migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to build application", "error", err)
		os.Exit(1)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(app.setupRouter()); err != nil {
		appLogger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// initialize loads configuration and sets up structured logging.
func initialize() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return cfg, appLogger, nil
}
