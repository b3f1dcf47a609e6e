package domain

import (
	"errors"
	"time"
)

// Common task validation errors
var (
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
	ErrEmptyTaskOwner = errors.New("task must belong to a user")
)

// Task represents a single to-do item owned by exactly one user.
// Every read and mutation of a task is scoped by its UserID; no
// cross-user access path exists.
type Task struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user.
// Description may be empty; Completed always starts false.
// The ID is zero until the store assigns one.
// Returns an error if validation fails.
func NewTask(userID int64, title, description string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if t.UserID <= 0 {
		return ErrEmptyTaskOwner
	}

	return nil
}
