package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkessler/taskhub-api/internal/domain"
	"github.com/mkessler/taskhub-api/internal/mocks"
	"github.com/mkessler/taskhub-api/internal/service/auth"
)

// okHandler records whether it ran and what user ID it saw.
type okHandler struct {
	called bool
	userID int64
}

func (h *okHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.userID, _ = GetUserID(r)
	w.WriteHeader(http.StatusOK)
}

func validClaims(userID int64) *auth.Claims {
	now := time.Now().UTC()
	return &auth.Claims{
		UserID:    userID,
		Subject:   "42",
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
		ID:        "token-id",
	}
}

func seedUser(t *testing.T, userStore *mocks.MockUserStore, username string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, "$2a$10$somehash")
	require.NoError(t, err)
	require.NoError(t, userStore.Create(context.Background(), user))
	return user
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid token reaches the handler with the user ID", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		user := seedUser(t, userStore, "alice")

		jwtService := &mocks.MockJWTService{Claims: validClaims(user.ID)}
		mw := NewAuthMiddleware(jwtService, userStore)

		next := &okHandler{}
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		recorder := httptest.NewRecorder()

		mw.Authenticate(next).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, next.called)
		assert.Equal(t, user.ID, next.userID)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{}, mocks.NewMockUserStore())
		next := &okHandler{}
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		recorder := httptest.NewRecorder()

		mw.Authenticate(next).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, next.called)
	})

	t.Run("malformed header", func(t *testing.T) {
		t.Parallel()

		mw := NewAuthMiddleware(&mocks.MockJWTService{}, mocks.NewMockUserStore())

		for _, header := range []string{"some-token", "Basic abc123", "Bearer a b"} {
			next := &okHandler{}
			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			req.Header.Set("Authorization", header)
			recorder := httptest.NewRecorder()

			mw.Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
			assert.False(t, next.called)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
		mw := NewAuthMiddleware(jwtService, mocks.NewMockUserStore())

		next := &okHandler{}
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		recorder := httptest.NewRecorder()

		mw.Authenticate(next).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Token expired")
		assert.False(t, next.called)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		mw := NewAuthMiddleware(jwtService, mocks.NewMockUserStore())

		next := &okHandler{}
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		recorder := httptest.NewRecorder()

		mw.Authenticate(next).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, next.called)
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		t.Parallel()

		// Valid claims, but no matching user row
		jwtService := &mocks.MockJWTService{Claims: validClaims(999)}
		mw := NewAuthMiddleware(jwtService, mocks.NewMockUserStore())

		next := &okHandler{}
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer orphan-token")
		recorder := httptest.NewRecorder()

		mw.Authenticate(next).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.False(t, next.called)
	})
}
