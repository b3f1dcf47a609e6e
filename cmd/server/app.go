package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mkessler/taskhub-api/internal/config"
	"github.com/mkessler/taskhub-api/internal/platform/postgres"
	"github.com/mkessler/taskhub-api/internal/service"
	"github.com/mkessler/taskhub-api/internal/service/auth"
	"github.com/mkessler/taskhub-api/internal/store"
)

// application holds the shared dependencies of the server: configuration,
// the logger, the database handle, and the services the handlers use.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	taskService      service.TaskService
}

// newApplication wires up all application dependencies from the loaded
// configuration. The database connection is verified before any service
// is constructed.
func newApplication(cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	taskStore := postgres.NewPostgresTaskStore(db, appLogger)

	taskService, err := service.NewTaskService(db, taskStore, appLogger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           appLogger,
		db:               db,
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(),
		passwordVerifier: auth.NewBcryptVerifier(),
		taskService:      taskService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
