package database

import (
	"context"
	"fmt"
)

// Connect opens the backend selected by driver and returns it as a Gateway
func Connect(ctx context.Context, driver Dialect, dsn string, pc PoolConfig) (Gateway, error) {
	switch driver {
	case DialectPostgres:
		pool, err := NewPostgresConnection(ctx, dsn, pc)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return NewPostgresGateway(pool), nil
	case DialectSQLite:
		db, err := NewSQLiteConnection(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		return NewSQLiteGateway(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
