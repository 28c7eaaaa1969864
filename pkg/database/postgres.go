package database

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig tunes the PostgreSQL connection pool
type PoolConfig struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	// SimpleProtocol avoids server-side prepared statements (PgBouncer transaction mode)
	SimpleProtocol bool
}

// DefaultPoolConfig returns the pool settings used in production
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxConns:        25,
		MinConns:        5,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
		SimpleProtocol:  true,
	}
}

type postgresGateway struct {
	pool *pgxpool.Pool
}

// NewPostgresConnection opens and pings a pgx pool
func NewPostgresConnection(ctx context.Context, connString string, pc PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}

	if pc.SimpleProtocol {
		// Prevents "prepared statement already exists" errors behind PgBouncer
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}

	config.MaxConns = pc.MaxConns
	config.MinConns = pc.MinConns
	config.MaxConnLifetime = pc.MaxConnLifetime
	config.MaxConnIdleTime = pc.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	slog.Info("Database connection established successfully", "driver", DialectPostgres)
	return pool, nil
}

// NewPostgresGateway wraps an existing pool
func NewPostgresGateway(pool *pgxpool.Pool) Gateway {
	return &postgresGateway{pool: pool}
}

func (g *postgresGateway) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	query = DialectPostgres.Rebind(query)

	// PostgreSQL reports no last insert id; ask for it explicitly
	if isInsert(query) {
		var id int64
		if err := g.pool.QueryRow(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return Result{}, wrap("execute", err)
		}
		return Result{LastInsertID: id, RowsAffected: 1}, nil
	}

	tag, err := g.pool.Exec(ctx, query, args...)
	if err != nil {
		return Result{}, wrap("execute", err)
	}
	return Result{RowsAffected: tag.RowsAffected()}, nil
}

func (g *postgresGateway) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := g.pool.Query(ctx, DialectPostgres.Rebind(query), args...)
	if err != nil {
		return nil, wrap("query", err)
	}
	return rows, nil
}

func (g *postgresGateway) Ping(ctx context.Context) error {
	return wrap("ping", g.pool.Ping(ctx))
}

func (g *postgresGateway) Dialect() Dialect {
	return DialectPostgres
}

func (g *postgresGateway) Close() {
	g.pool.Close()
}

func isInsert(query string) bool {
	q := strings.ToUpper(strings.TrimSpace(query))
	return strings.HasPrefix(q, "INSERT") && !strings.Contains(q, "RETURNING")
}
