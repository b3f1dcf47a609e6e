package mocks

import (
	"context"
	"sync"

	"github.com/mkessler/taskhub-api/internal/domain"
	"github.com/mkessler/taskhub-api/internal/service"
	"github.com/mkessler/taskhub-api/internal/store"
)

// MockTaskService implements service.TaskService for testing.
type MockTaskService struct {
	// Custom behavior functions
	CreateTaskFn func(ctx context.Context, userID int64, title, description string) (*domain.Task, error)
	GetTaskFn    func(ctx context.Context, userID, taskID int64) (*domain.Task, error)
	ListTasksFn  func(ctx context.Context, userID int64, filter store.TaskFilter, page, perPage int) (*store.TaskPage, error)
	UpdateTaskFn func(ctx context.Context, userID, taskID int64, update service.TaskUpdate) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, userID, taskID int64) error

	// Default response values
	Task *domain.Task
	Page *store.TaskPage
	Err  error

	// Call tracking for verification
	mu          sync.Mutex
	CallCounts  map[string]int
	LastUserID  int64
	LastTaskID  int64
	LastUpdate  service.TaskUpdate
	LastFilter  store.TaskFilter
	LastPage    int
	LastPerPage int
}

// NewMockTaskService creates a new mock service with initialized defaults.
func NewMockTaskService() *MockTaskService {
	return &MockTaskService{
		CallCounts: make(map[string]int),
	}
}

func (m *MockTaskService) track(method string, userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCounts[method]++
	m.LastUserID = userID
}

// CreateTask implements the service.TaskService interface.
func (m *MockTaskService) CreateTask(
	ctx context.Context,
	userID int64,
	title, description string,
) (*domain.Task, error) {
	m.track("CreateTask", userID)
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, userID, title, description)
	}
	return m.Task, m.Err
}

// GetTask implements the service.TaskService interface.
func (m *MockTaskService) GetTask(
	ctx context.Context,
	userID, taskID int64,
) (*domain.Task, error) {
	m.track("GetTask", userID)
	m.mu.Lock()
	m.LastTaskID = taskID
	m.mu.Unlock()
	if m.GetTaskFn != nil {
		return m.GetTaskFn(ctx, userID, taskID)
	}
	return m.Task, m.Err
}

// ListTasks implements the service.TaskService interface.
func (m *MockTaskService) ListTasks(
	ctx context.Context,
	userID int64,
	filter store.TaskFilter,
	page, perPage int,
) (*store.TaskPage, error) {
	m.track("ListTasks", userID)
	m.mu.Lock()
	m.LastFilter = filter
	m.LastPage = page
	m.LastPerPage = perPage
	m.mu.Unlock()
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, userID, filter, page, perPage)
	}
	return m.Page, m.Err
}

// UpdateTask implements the service.TaskService interface.
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	userID, taskID int64,
	update service.TaskUpdate,
) (*domain.Task, error) {
	m.track("UpdateTask", userID)
	m.mu.Lock()
	m.LastTaskID = taskID
	m.LastUpdate = update
	m.mu.Unlock()
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, userID, taskID, update)
	}
	return m.Task, m.Err
}

// DeleteTask implements the service.TaskService interface.
func (m *MockTaskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	m.track("DeleteTask", userID)
	m.mu.Lock()
	m.LastTaskID = taskID
	m.mu.Unlock()
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, userID, taskID)
	}
	return m.Err
}
