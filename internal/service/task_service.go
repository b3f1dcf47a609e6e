package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mkessler/taskhub-api/internal/domain"
	"github.com/mkessler/taskhub-api/internal/platform/logger"
	"github.com/mkessler/taskhub-api/internal/store"
)

// TaskServiceError is a custom error type for task service errors.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// TaskUpdate describes a partial update to a task. Nil fields are left
// unchanged; non-nil fields overwrite unconditionally, including setting
// Completed back to false or Description to the empty string.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskService provides task CRUD operations scoped to an owning user.
// Every method takes the authenticated user's ID and never exposes
// another user's tasks.
type TaskService interface {
	// CreateTask creates a new incomplete task owned by userID.
	CreateTask(ctx context.Context, userID int64, title, description string) (*domain.Task, error)

	// GetTask retrieves a single task owned by userID.
	// Returns store.ErrTaskNotFound if no such task is owned by that user.
	GetTask(ctx context.Context, userID, taskID int64) (*domain.Task, error)

	// ListTasks returns one page of the tasks owned by userID.
	ListTasks(
		ctx context.Context,
		userID int64,
		filter store.TaskFilter,
		page, perPage int,
	) (*store.TaskPage, error)

	// UpdateTask applies a partial update to a task owned by userID and
	// returns the updated record. The read and write happen in a single
	// transaction so concurrent partial updates never interleave.
	// Returns store.ErrTaskNotFound if no such task is owned by that user.
	UpdateTask(ctx context.Context, userID, taskID int64, update TaskUpdate) (*domain.Task, error)

	// DeleteTask permanently removes a task owned by userID.
	// Returns store.ErrTaskNotFound if no such task is owned by that user.
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	db        *sql.DB
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(db *sql.DB, taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		db:        db,
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	userID int64,
	title, description string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := domain.NewTask(userID, title, description)
	if err != nil {
		log.Debug("task construction failed",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	return task, nil
}

// GetTask implements TaskService.GetTask.
func (s *taskServiceImpl) GetTask(
	ctx context.Context,
	userID, taskID int64,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.taskStore.GetByID(ctx, userID, taskID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to retrieve task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID),
			slog.Int64("user_id", userID))
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}

	return task, nil
}

// ListTasks implements TaskService.ListTasks.
func (s *taskServiceImpl) ListTasks(
	ctx context.Context,
	userID int64,
	filter store.TaskFilter,
	page, perPage int,
) (*store.TaskPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Out-of-range pagination is a caller bug the HTTP layer should have
	// rejected, but the guard keeps the store contract honest.
	if page < 1 {
		return nil, domain.NewValidationError("page", "must be a positive integer", domain.ErrValidation)
	}
	if perPage < 1 {
		return nil, domain.NewValidationError("per_page", "must be a positive integer", domain.ErrValidation)
	}

	result, err := s.taskStore.List(ctx, userID, filter, page, perPage)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.Int("page", page),
			slog.Int("per_page", perPage))
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	return result, nil
}

// UpdateTask implements TaskService.UpdateTask.
// It runs the read-apply-write sequence in a single transaction.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	userID, taskID int64,
	update TaskUpdate,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.taskStore.WithTx(tx)

		task, err := txStore.GetByID(ctx, userID, taskID)
		if err != nil {
			return err
		}

		if update.Title != nil {
			task.Title = *update.Title
		}
		if update.Description != nil {
			task.Description = *update.Description
		}
		if update.Completed != nil {
			task.Completed = *update.Completed
		}

		if err := task.Validate(); err != nil {
			return err
		}

		if err := txStore.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})

	if err != nil {
		if store.IsNotFoundError(err) || isValidationError(err) {
			return nil, err
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID),
			slog.Int64("user_id", userID))
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	return updated, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.Delete(ctx, userID, taskID); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID),
			slog.Int64("user_id", userID))
		return NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	return nil
}

// isValidationError reports whether err stems from domain validation,
// so the API layer can answer 400 instead of 500.
func isValidationError(err error) bool {
	return errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrEmptyTaskTitle) ||
		errors.Is(err, domain.ErrEmptyTaskOwner)
}
