package sqlstore

import (
	"context"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/database"
)

type collectionRepo[T any] struct {
	db    database.Gateway
	table Table[T]
}

// NewCollectionRepository creates a repository for a multi-row table
func NewCollectionRepository[T any](db database.Gateway, table Table[T]) domain.CollectionRepository[T] {
	return &collectionRepo[T]{db: db, table: table}
}

// List returns all rows in storage order
func (r *collectionRepo[T]) List(ctx context.Context) ([]T, error) {
	return database.FetchMany(ctx, r.db, r.table.scan, r.table.selectSQL())
}

func (r *collectionRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	v, ok, err := database.FetchOne(ctx, r.db, r.table.scan, r.table.selectSQL()+" WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (r *collectionRepo[T]) Create(ctx context.Context, v *T) error {
	res, err := r.db.Execute(ctx, r.table.insertSQL(), r.table.Values(v)...)
	if err != nil {
		return err
	}
	r.table.SetID(v, res.LastInsertID)
	return nil
}

// Update overwrites the row with the given id; the affected count decides NotFound
func (r *collectionRepo[T]) Update(ctx context.Context, id int64, v *T) error {
	args := append(r.table.Values(v), id)

	res, err := r.db.Execute(ctx, r.table.updateSQL("id = ?"), args...)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	r.table.SetID(v, id)
	return nil
}

func (r *collectionRepo[T]) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Execute(ctx, r.table.deleteSQL()+" WHERE id = ?", id)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
