package database

import (
	"context"
	"strconv"
	"strings"
)

// Dialect identifies the SQL flavour spoken by a Gateway
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// IdentityColumn returns the column definition for an auto-generated integer primary key
func (d Dialect) IdentityColumn() string {
	if d == DialectPostgres {
		return "BIGSERIAL PRIMARY KEY"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

// Rebind converts '?' placeholders to the dialect's native form.
// Placeholders inside single-quoted literals are left untouched.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			inQuote = !inQuote
			b.WriteByte(ch)
		case ch == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// Result is the outcome of a mutating statement
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Scanner is the single-row view handed to scan functions
type Scanner interface {
	Scan(dest ...any) error
}

// Rows is the common cursor shape of pgx.Rows and *sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Gateway is the storage primitive every repository talks to.
// Statements use '?' placeholders regardless of the backend.
type Gateway interface {
	Execute(ctx context.Context, query string, args ...any) (Result, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	Ping(ctx context.Context) error
	Dialect() Dialect
	Close()
}

// ScanFunc maps one row to a value
type ScanFunc[T any] func(row Scanner) (T, error)

// FetchOne returns the first row of the query. ok is false when the query
// yields no rows; that case is never reported as an error.
func FetchOne[T any](ctx context.Context, gw Gateway, scan ScanFunc[T], query string, args ...any) (v T, ok bool, err error) {
	rows, err := gw.Query(ctx, query, args...)
	if err != nil {
		return v, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return v, false, wrap("fetch one", err)
		}
		return v, false, nil
	}

	v, err = scan(rows)
	if err != nil {
		return v, false, wrap("fetch one", err)
	}
	return v, true, nil
}

// FetchMany returns every row of the query in engine order.
// The returned slice is never nil.
func FetchMany[T any](ctx context.Context, gw Gateway, scan ScanFunc[T], query string, args ...any) ([]T, error) {
	rows, err := gw.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, wrap("fetch many", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("fetch many", err)
	}
	return out, nil
}
