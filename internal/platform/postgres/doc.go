// Package postgres contains the PostgreSQL implementations of the store
// interfaces defined in internal/store, built on database/sql with the
// pgx stdlib driver.
package postgres
