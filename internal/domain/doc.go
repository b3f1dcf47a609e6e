// Package domain defines the core business entities and errors for the
// task-tracking service: users, the tasks they own, and the validation
// rules that protect their invariants.
package domain
