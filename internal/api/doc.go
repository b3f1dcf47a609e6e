// Package api provides the HTTP handlers for the task-tracking service:
// registration and login under /auth, and the owner-scoped task CRUD
// endpoints under /tasks.
package api
