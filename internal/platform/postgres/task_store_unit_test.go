package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkessler/taskhub-api/internal/domain"
)

func TestNewPostgresTaskStorePanicsOnNilDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewPostgresTaskStore(nil, nil)
	})
}

func TestNewPostgresUserStorePanicsOnNilDB(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewPostgresUserStore(nil, nil)
	})
}

func TestTaskStoreCreateRejectsInvalidTask(t *testing.T) {
	t.Parallel()

	// Validation fails before any SQL runs, so a sentinel DBTX is enough.
	s := NewPostgresTaskStore(nilSafeDBTX{}, nil)

	err := s.Create(context.Background(), &domain.Task{UserID: 1, Title: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)

	err = s.Create(context.Background(), &domain.Task{UserID: 0, Title: "buy milk"})
	assert.ErrorIs(t, err, domain.ErrEmptyTaskOwner)
}

func TestUserStoreCreateRejectsInvalidUser(t *testing.T) {
	t.Parallel()

	s := NewPostgresUserStore(nilSafeDBTX{}, nil)

	err := s.Create(context.Background(), &domain.User{Username: "", HashedPassword: "hash"})
	assert.ErrorIs(t, err, domain.ErrEmptyUsername)
}
