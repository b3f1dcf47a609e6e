package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/mkessler/taskhub-api/internal/domain"
	"github.com/mkessler/taskhub-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// By default it behaves like an in-memory store with auto-assigned IDs;
// individual methods can be overridden via the Fn fields.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)

	// Data for default implementation
	mu     sync.Mutex
	Users  map[string]*domain.User // keyed by username
	nextID int64

	// Errors returned by the default implementation when set
	CreateError error
	GetError    error
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[string]*domain.User),
		nextID: 1,
	}
}

// Create implements the store.UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	if err := user.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}

	user.ID = m.nextID
	m.nextID++
	m.Users[user.Username] = user
	return nil
}

// GetByID implements the store.UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByUsername implements the store.UserStore interface.
func (m *MockUserStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// WithTx implements the store.UserStore interface.
// The mock has no real transactions, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
