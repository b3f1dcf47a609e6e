package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mkessler/taskhub-api/internal/domain"
	"github.com/mkessler/taskhub-api/internal/platform/logger"
	"github.com/mkessler/taskhub-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
// Every query is scoped by the owning user's ID.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// It saves a new task to the database and assigns the generated ID.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", task.UserID))
		return err
	}

	query := `
		INSERT INTO tasks (user_id, title, description, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	err := s.db.QueryRowContext(
		ctx,
		query,
		task.UserID,
		task.Title,
		task.Description,
		task.Completed,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("error", err.Error()),
				slog.Int64("user_id", task.UserID))
			return fmt.Errorf("%w: user with ID %d not found",
				store.ErrInvalidEntity, task.UserID)
		}

		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("user_id", task.UserID))
		return MapError(err)
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", task.UserID))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if no task with that ID is owned by userID.
func (s *PostgresTaskStore) GetByID(
	ctx context.Context,
	userID, id int64,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, description, completed, created_at, updated_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found",
				slog.Int64("task_id", id),
				slog.Int64("user_id", userID))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}

	return &task, nil
}

// List implements store.TaskStore.List
// It returns one page of the tasks owned by userID in insertion order,
// along with the total count and page count for the filter.
func (s *PostgresTaskStore) List(
	ctx context.Context,
	userID int64,
	filter store.TaskFilter,
	page, perPage int,
) (*store.TaskPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Both queries share the same predicate so total and items agree.
	where := "WHERE user_id = $1"
	args := []any{userID}
	if filter.Completed != nil {
		where += " AND completed = $2"
		args = append(args, *filter.Completed)
	}

	countQuery := "SELECT COUNT(*) FROM tasks " + where

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count tasks",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}

	listQuery := strings.Join([]string{
		"SELECT id, user_id, title, description, completed, created_at, updated_at",
		"FROM tasks",
		where,
		"ORDER BY id",
		fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2),
	}, " ")
	args = append(args, perPage, (page-1)*perPage)

	rows, err := s.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0, perPage)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.Completed,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()),
				slog.Int64("user_id", userID))
			return nil, MapError(err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		log.Error("row iteration failed",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, MapError(err)
	}

	pages := 0
	if total > 0 {
		pages = (total + perPage - 1) / perPage
	}

	return &store.TaskPage{
		Tasks:       tasks,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
	}, nil
}

// Update implements store.TaskStore.Update
// It overwrites title, description, and completed, and refreshes updated_at.
// Returns store.ErrTaskNotFound if no task with that ID is owned by task.UserID.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID),
			slog.Int64("user_id", task.UserID))
		return err
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, completed = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`

	task.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.Completed,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID),
			slog.Int64("user_id", task.UserID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		log.Debug("task not found for update",
			slog.Int64("task_id", task.ID),
			slog.Int64("user_id", task.UserID))
		return err
	}

	log.Info("task updated",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", task.UserID))
	return nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if no task with that ID is owned by userID.
func (s *PostgresTaskStore) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id),
			slog.Int64("user_id", userID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		log.Debug("task not found for delete",
			slog.Int64("task_id", id),
			slog.Int64("user_id", userID))
		return err
	}

	log.Info("task deleted",
		slog.Int64("task_id", id),
		slog.Int64("user_id", userID))
	return nil
}

// WithTx implements store.TaskStore.WithTx
// It returns a new store instance backed by the given transaction.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}
