package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/mkessler/taskhub-api/internal/domain"
	"github.com/mkessler/taskhub-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// The default implementation is an in-memory, owner-scoped store with
// auto-assigned IDs; individual methods can be overridden via Fn fields.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, userID, id int64) (*domain.Task, error)
	ListFn    func(ctx context.Context, userID int64, filter store.TaskFilter, page, perPage int) (*store.TaskPage, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, userID, id int64) error

	// Data for default implementation
	mu     sync.Mutex
	Tasks  map[int64]*domain.Task // keyed by task ID
	nextID int64

	// Error returned by the default implementation when set
	Err error
}

// NewMockTaskStore creates a new mock store with initialized defaults.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

// Create implements the store.TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if m.Err != nil {
		return m.Err
	}
	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task.ID = m.nextID
	m.nextID++
	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// GetByID implements the store.TaskStore interface.
func (m *MockTaskStore) GetByID(
	ctx context.Context,
	userID, id int64,
) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.Tasks[id]
	if !exists || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

// List implements the store.TaskStore interface.
func (m *MockTaskStore) List(
	ctx context.Context,
	userID int64,
	filter store.TaskFilter,
	page, perPage int,
) (*store.TaskPage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, filter, page, perPage)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var matching []*domain.Task
	for _, task := range m.Tasks {
		if task.UserID != userID {
			continue
		}
		if filter.Completed != nil && task.Completed != *filter.Completed {
			continue
		}
		copied := *task
		matching = append(matching, &copied)
	}
	sort.Slice(matching, func(i, j int) bool { return matching[i].ID < matching[j].ID })

	total := len(matching)
	pages := 0
	if total > 0 {
		pages = (total + perPage - 1) / perPage
	}

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return &store.TaskPage{
		Tasks:       matching[start:end],
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
	}, nil
}

// Update implements the store.TaskStore interface.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	if m.Err != nil {
		return m.Err
	}
	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, exists := m.Tasks[task.ID]
	if !exists || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}

	task.UpdatedAt = time.Now().UTC()
	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// Delete implements the store.TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, userID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, id)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.Tasks[id]
	if !exists || task.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// WithTx implements the store.TaskStore interface.
// The mock has no real transactions, so it returns itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
