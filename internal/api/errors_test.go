package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkessler/taskhub-api/internal/api"
	"github.com/mkessler/taskhub-api/internal/domain"
	"github.com/mkessler/taskhub-api/internal/service/auth"
	"github.com/mkessler/taskhub-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"validation error", domain.ErrValidation, http.StatusBadRequest},
		{"empty task title", domain.ErrEmptyTaskTitle, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"username exists", store.ErrUsernameExists, "Username already exists"},
		{"empty task title", domain.ErrEmptyTaskTitle, "Title is required"},
		{"invalid entity", store.ErrInvalidEntity, "Invalid entity data"},
		{"unknown error", errors.New("pq: relation does not exist"), "An unexpected error occurred"},
		{"nil error", nil, "An unexpected error occurred"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.GetSafeErrorMessage(tc.err))
		})
	}
}

func TestGetSafeErrorMessage_ValidationError(t *testing.T) {
	t.Parallel()

	err := domain.NewValidationError("page", "must be a positive integer", domain.ErrValidation)
	got := api.GetSafeErrorMessage(err)
	assert.Equal(t, "Invalid page: must be a positive integer", got)
}

func TestGetSafeErrorMessage_NeverEchoesInternals(t *testing.T) {
	t.Parallel()

	internal := errors.New(`dial tcp 10.0.0.5:5432: connect: connection refused`)
	got := api.GetSafeErrorMessage(fmt.Errorf("query users: %w", internal))
	assert.NotContains(t, got, "10.0.0.5")
	assert.NotContains(t, got, "5432")
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	type loginShape struct {
		Username string `validate:"required"`
		Password string `validate:"required,max=72"`
	}

	validate := validator.New()

	t.Run("required field", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(loginShape{Password: "pw"})
		require.Error(t, err)

		got := api.SanitizeValidationError(err)
		assert.Contains(t, got, "Username")
		assert.Contains(t, got, "required")
	})

	t.Run("max length", func(t *testing.T) {
		t.Parallel()
		long := make([]byte, 80)
		for i := range long {
			long[i] = 'a'
		}
		err := validate.Struct(loginShape{Username: "u", Password: string(long)})
		require.Error(t, err)

		got := api.SanitizeValidationError(err)
		assert.Contains(t, got, "Password")
	})

	t.Run("non-validator error", func(t *testing.T) {
		t.Parallel()
		got := api.SanitizeValidationError(errors.New("something else"))
		assert.Equal(t, "Validation error", got)
	})
}
