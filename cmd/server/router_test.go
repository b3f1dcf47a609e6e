package main

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkessler/taskhub-api/internal/api"
	"github.com/mkessler/taskhub-api/internal/config"
	"github.com/mkessler/taskhub-api/internal/domain"
	"github.com/mkessler/taskhub-api/internal/mocks"
	"github.com/mkessler/taskhub-api/internal/service/auth"
)

// stub driver so router tests can hold a non-nil *sql.DB without a running
// database. Connections succeed; statement execution does not.

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return stubConn{}, nil }

type stubConn struct{}

func (stubConn) Prepare(string) (driver.Stmt, error) { return nil, io.EOF }
func (stubConn) Close() error                        { return nil }
func (stubConn) Begin() (driver.Tx, error)           { return stubTx{}, nil }

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stubConnector struct{}

func (stubConnector) Connect(context.Context) (driver.Conn, error) { return stubConn{}, nil }
func (stubConnector) Driver() driver.Driver                        { return stubDriver{} }

func newTestApplication(t *testing.T) (*application, *mocks.MockUserStore, *mocks.MockJWTService) {
	t.Helper()

	db := sql.OpenDB(stubConnector{})
	t.Cleanup(func() { _ = db.Close() })

	userStore := mocks.NewMockUserStore()
	jwtService := &mocks.MockJWTService{Lifetime: time.Hour}

	app := &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		},
		logger:           slog.Default(),
		db:               db,
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   &mocks.MockPasswordHasher{},
		passwordVerifier: &mocks.MockPasswordVerifier{ShouldSucceed: true},
		taskService:      mocks.NewMockTaskService(),
	}
	return app, userStore, jwtService
}

func TestRouter_PublicRoutes(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	t.Run("health check", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ok")
	})

	t.Run("register does not require a token", func(t *testing.T) {
		t.Parallel()
		body := strings.NewReader(`{"username": "alice", "password": "pw1"}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/register", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_TaskRoutesRequireAuth(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApplication(t)
	router := app.setupRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/tasks"},
		{http.MethodGet, "/tasks"},
		{http.MethodGet, "/tasks/1"},
		{http.MethodPut, "/tasks/1"},
		{http.MethodDelete, "/tasks/1"},
	}

	for _, route := range routes {
		route := route
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_AuthenticatedTaskFlow(t *testing.T) {
	t.Parallel()

	app, userStore, jwtService := newTestApplication(t)

	user, err := domain.NewUser("alice", "hashed:pw1")
	require.NoError(t, err)
	require.NoError(t, userStore.Create(context.Background(), user))

	jwtService.Claims = &auth.Claims{UserID: user.ID}

	taskService := mocks.NewMockTaskService()
	now := time.Now().UTC()
	taskService.Task = &domain.Task{
		ID: 1, UserID: user.ID, Title: "Buy milk",
		CreatedAt: now, UpdatedAt: now,
	}
	app.taskService = taskService

	router := app.setupRouter()

	body := strings.NewReader(`{"title": "Buy milk"}`)
	req := httptest.NewRequest(http.MethodPost, "/tasks", body)
	req.Header.Set("Authorization", "Bearer some.valid.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, user.ID, taskService.LastUserID)

	var resp api.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Buy milk", resp.Title)
}
