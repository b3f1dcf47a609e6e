package store

import (
	"context"
	"database/sql"

	"github.com/mkessler/taskhub-api/internal/domain"
)

// TaskFilter narrows a task listing. A nil Completed means no completion
// filter is applied.
type TaskFilter struct {
	Completed *bool
}

// TaskPage is one page of a task listing along with pagination metadata.
type TaskPage struct {
	Tasks       []*domain.Task
	Total       int // Total tasks matching the filter, across all pages
	Pages       int // Total number of pages at the requested page size
	CurrentPage int
}

// TaskStore defines the interface for task data persistence.
// Every read and mutation is scoped by the owning user's ID; a task that
// exists but belongs to another user is indistinguishable from a task
// that does not exist.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its ID, scoped to the given owner.
	// Returns ErrTaskNotFound if no such task is owned by userID.
	GetByID(ctx context.Context, userID, id int64) (*domain.Task, error)

	// List returns one page of the tasks owned by userID, in insertion
	// order, applying the optional completion filter. page and perPage
	// must be positive; validation is the caller's responsibility.
	List(ctx context.Context, userID int64, filter TaskFilter, page, perPage int) (*TaskPage, error)

	// Update overwrites an existing task's title, description, and
	// completion status, refreshing its updated_at timestamp. The update
	// is scoped by task.UserID.
	// Returns ErrTaskNotFound if no such task is owned by that user.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes a task by its ID, scoped to the given owner.
	// Returns ErrTaskNotFound if no such task is owned by userID.
	Delete(ctx context.Context, userID, id int64) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
