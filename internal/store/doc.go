// Package store defines the persistence interfaces and shared errors for
// the task-tracking service. Concrete implementations live under
// internal/platform (e.g. the PostgreSQL implementation).
package store
