package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorWrapping(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrTaskNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrUsernameExists, ErrDuplicate)

	// Wrapping an entity-specific error keeps both sentinels reachable
	wrapped := fmt.Errorf("lookup failed: %w", ErrTaskNotFound)
	assert.ErrorIs(t, wrapped, ErrTaskNotFound)
	assert.ErrorIs(t, wrapped, ErrNotFound)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"generic not found", ErrNotFound, true},
		{"user not found", ErrUserNotFound, true},
		{"task not found", ErrTaskNotFound, true},
		{"wrapped task not found", fmt.Errorf("context: %w", ErrTaskNotFound), true},
		{"duplicate", ErrUsernameExists, false},
		{"unrelated", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrUsernameExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("creating user: %w", ErrUsernameExists)))
	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := NewStoreError("task", "update", "exec failed", cause)

	assert.Contains(t, err.Error(), "update operation on task failed")
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)

	// Without a cause the message stands alone
	bare := NewStoreError("user", "create", "no rows", nil)
	assert.Equal(t, "create operation on user failed: no rows", bare.Error())
}
