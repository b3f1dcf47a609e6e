package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mkessler/taskhub-api/internal/api/shared"
	"github.com/mkessler/taskhub-api/internal/service"
	"github.com/mkessler/taskhub-api/internal/store"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
)

// TaskHandler handles HTTP requests for task operations. Every route it
// serves sits behind the auth middleware, so the owning user ID is always
// present in the request context.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given task service.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// List handles GET /tasks with pagination and an optional completed filter.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	page, perPage, err := parsePagination(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	filter := parseCompletedFilter(r)

	result, err := h.taskService.ListTasks(r.Context(), userID, filter, page, perPage)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskPageToResponse(result))
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	task, err := h.taskService.GetTask(r.Context(), userID, taskID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Update handles PUT /tasks/{id}. The update is partial: omitted fields
// keep their current values.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	update := service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	task, err := h.taskService.UpdateTask(r.Context(), userID, taskID, update)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// Delete handles DELETE /tasks/{id}. Deleting an already deleted task
// answers 404 like any other missing task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.UserID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	taskID, err := parseTaskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), userID, taskID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted successfully",
	})
}

// parseTaskID extracts the task ID from the URL path.
func parseTaskID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// paginationError carries a client-facing message for a bad page or
// per_page value.
type paginationError string

func (e paginationError) Error() string { return string(e) }

// parsePagination reads page and per_page from the query string, applying
// defaults of 1 and 10. Non-integer or out-of-range values are rejected
// rather than clamped.
func parsePagination(r *http.Request) (page, perPage int, err error) {
	page = defaultPage
	perPage = defaultPerPage

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, paginationError("Invalid page: must be a positive integer")
		}
	}

	if raw := r.URL.Query().Get("per_page"); raw != "" {
		perPage, err = strconv.Atoi(raw)
		if err != nil || perPage < 1 {
			return 0, 0, paginationError("Invalid per_page: must be a positive integer")
		}
		if perPage > maxPerPage {
			return 0, 0, paginationError("Invalid per_page: must not exceed 100")
		}
	}

	return page, perPage, nil
}

// parseCompletedFilter reads the optional completed query parameter.
// The values "true", "1" and "t" select completed tasks; any other value
// selects incomplete tasks; an absent parameter selects everything.
func parseCompletedFilter(r *http.Request) store.TaskFilter {
	var filter store.TaskFilter
	if !r.URL.Query().Has("completed") {
		return filter
	}

	raw := strings.ToLower(r.URL.Query().Get("completed"))
	completed := raw == "true" || raw == "1" || raw == "t"
	filter.Completed = &completed
	return filter
}
