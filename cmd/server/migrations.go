package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/mkessler/taskhub-api/internal/config"
)

const migrationsDir = "internal/platform/postgres/migrations"

// runMigrations executes the requested goose command against the configured
// database. Supported commands are up, down and status.
func runMigrations(cfg *config.Config, command string) error {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	goose.SetLogger(&gooseSlogAdapter{logger: slog.Default()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	switch command {
	case "up":
		return goose.Up(db, migrationsDir)
	case "down":
		return goose.Down(db, migrationsDir)
	case "status":
		return goose.Status(db, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command %q (want up, down or status)", command)
	}
}

// gooseSlogAdapter routes goose output through the structured logger.
type gooseSlogAdapter struct {
	logger *slog.Logger
}

func (a *gooseSlogAdapter) Fatalf(format string, v ...interface{}) {
	a.logger.Error(fmt.Sprintf(format, v...))
}

func (a *gooseSlogAdapter) Printf(format string, v ...interface{}) {
	a.logger.Info(fmt.Sprintf(format, v...))
}
