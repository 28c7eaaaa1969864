package sqlstore

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/database"
)

type singletonRepo[T any] struct {
	db    database.Gateway
	table Table[T]
}

// NewSingletonRepository creates a repository for a table that holds at most one row
func NewSingletonRepository[T any](db database.Gateway, table Table[T]) domain.SingletonRepository[T] {
	return &singletonRepo[T]{db: db, table: table}
}

// Get retrieves the single row, lowest id first should the table ever hold more
func (r *singletonRepo[T]) Get(ctx context.Context) (*T, error) {
	query := r.table.selectSQL() + " ORDER BY id LIMIT 1"

	v, ok, err := database.FetchOne(ctx, r.db, r.table.scan, query)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

// Replace deletes any existing row and inserts v, so the table keeps one row
func (r *singletonRepo[T]) Replace(ctx context.Context, v *T) error {
	if _, err := r.db.Execute(ctx, r.table.deleteSQL()); err != nil {
		return err
	}

	res, err := r.db.Execute(ctx, r.table.insertSQL(), r.table.Values(v)...)
	if err != nil {
		return err
	}
	r.table.SetID(v, res.LastInsertID)
	return nil
}

// Update writes v over the first row. An empty table yields 0 changes, not an error.
// The id is not writable, so any id carried by v is cleared.
func (r *singletonRepo[T]) Update(ctx context.Context, v *T) (int64, error) {
	r.table.SetID(v, 0)
	where := "id = (SELECT id FROM " + r.table.table() + " ORDER BY id LIMIT 1)"

	res, err := r.db.Execute(ctx, r.table.updateSQL(where), r.table.Values(v)...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}

func (r *singletonRepo[T]) DeleteAll(ctx context.Context) error {
	_, err := r.db.Execute(ctx, r.table.deleteSQL())
	return err
}
