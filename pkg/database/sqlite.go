package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

type sqliteGateway struct {
	db *sql.DB
}

type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() {
	_ = r.Rows.Close()
}

// NewSQLiteConnection opens a SQLite database at dsn (a file path or ":memory:")
func NewSQLiteConnection(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer; also keeps ":memory:" databases on one connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		// SQLite retries a locked database for this long
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing db", "error", closeErr)
			}
			return nil, fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	slog.Info("Database connection established successfully", "driver", DialectSQLite)
	return db, nil
}

// NewSQLiteGateway wraps an open *sql.DB
func NewSQLiteGateway(db *sql.DB) Gateway {
	return &sqliteGateway{db: db}
}

func (g *sqliteGateway) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	res, err := g.db.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, wrap("execute", err)
	}

	var out Result
	if out.RowsAffected, err = res.RowsAffected(); err != nil {
		return Result{}, wrap("execute", err)
	}
	if isInsert(query) {
		if out.LastInsertID, err = res.LastInsertId(); err != nil {
			return Result{}, wrap("execute", err)
		}
	}
	return out, nil
}

func (g *sqliteGateway) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap("query", err)
	}
	return sqlRows{rows}, nil
}

func (g *sqliteGateway) Ping(ctx context.Context) error {
	return wrap("ping", g.db.PingContext(ctx))
}

func (g *sqliteGateway) Dialect() Dialect {
	return DialectSQLite
}

func (g *sqliteGateway) Close() {
	if err := g.db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
