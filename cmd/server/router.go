package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkessler/taskhub-api/internal/api"
	apimiddleware "github.com/mkessler/taskhub-api/internal/api/middleware"
	"github.com/mkessler/taskhub-api/internal/api/shared"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
	)
	taskHandler := api.NewTaskHandler(app.taskService)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	// Authentication endpoints (public)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Task endpoints, owner scoped behind the auth middleware
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/tasks", taskHandler.Create)
		r.Get("/tasks", taskHandler.List)
		r.Get("/tasks/{id}", taskHandler.Get)
		r.Put("/tasks/{id}", taskHandler.Update)
		r.Delete("/tasks/{id}", taskHandler.Delete)
	})

	// Health check endpoint
	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports liveness and checks database reachability.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := app.db.PingContext(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
			"Database unavailable", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
