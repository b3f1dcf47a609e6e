package postgres

import (
	"context"
	"database/sql"
)

// nilSafeDBTX satisfies store.DBTX for tests that exercise code paths
// which must fail before issuing any SQL. Every method panics, so a test
// that accidentally reaches the database fails loudly.
type nilSafeDBTX struct{}

func (nilSafeDBTX) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	panic("unexpected ExecContext call")
}

func (nilSafeDBTX) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	panic("unexpected PrepareContext call")
}

func (nilSafeDBTX) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	panic("unexpected QueryContext call")
}

func (nilSafeDBTX) QueryRowContext(context.Context, string, ...any) *sql.Row {
	panic("unexpected QueryRowContext call")
}
