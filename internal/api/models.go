package api

import (
	"time"

	"github.com/mkessler/taskhub-api/internal/domain"
	"github.com/mkessler/taskhub-api/internal/store"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
// Password length is capped at 72 bytes, bcrypt's practical limit.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	// Token is the JWT used for API authorization
	Token string `json:"token"`

	// ExpiresAt is the ISO 8601 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
}

// UpdateTaskRequest defines the payload for a partial task update.
// Omitted fields keep their current value; present fields overwrite
// unconditionally, including `"completed": false`.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	UserID      int64     `json:"user_id"`
}

// TaskListResponse represents one page of a task listing.
type TaskListResponse struct {
	Tasks       []TaskResponse `json:"tasks"`
	Total       int            `json:"total"`
	Pages       int            `json:"pages"`
	CurrentPage int            `json:"current_page"`
}

// taskToResponse converts a domain task to its API representation.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		UserID:      task.UserID,
	}
}

// taskPageToResponse converts a store page to its API representation.
func taskPageToResponse(page *store.TaskPage) TaskListResponse {
	tasks := make([]TaskResponse, 0, len(page.Tasks))
	for _, task := range page.Tasks {
		tasks = append(tasks, taskToResponse(task))
	}
	return TaskListResponse{
		Tasks:       tasks,
		Total:       page.Total,
		Pages:       page.Pages,
		CurrentPage: page.CurrentPage,
	}
}
