package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
)

var ErrNotFound = errors.New("resource not found")

// SingletonRepository stores a table that holds at most one row
type SingletonRepository[T any] interface {
	// Get returns ErrNotFound when the table is empty
	Get(ctx context.Context) (*T, error)
	// Replace deletes every row and inserts v, setting its ID
	Replace(ctx context.Context, v *T) error
	// Update changes the first row and reports how many rows changed (0 or 1).
	// It clears v's ID; the row keeps its own.
	Update(ctx context.Context, v *T) (int64, error)
	DeleteAll(ctx context.Context) error
}

// CollectionRepository stores a multi-row table keyed by an integer id
type CollectionRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	// Create inserts v and sets its ID
	Create(ctx context.Context, v *T) error
	// Update and Delete return ErrNotFound when no row matched id
	Update(ctx context.Context, id int64, v *T) error
	Delete(ctx context.Context, id int64) error
}

// SingletonUsecase is the request-facing contract of a singleton resource
type SingletonUsecase[T any] interface {
	Get(ctx context.Context) (*T, error)
	Replace(ctx context.Context, v *T) (*T, error)
	Update(ctx context.Context, v *T) (*SingletonUpdate[T], error)
	Delete(ctx context.Context) error
}

// CollectionUsecase is the request-facing contract of a multi-row resource
type CollectionUsecase[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, v *T) (*T, error)
	Update(ctx context.Context, id int64, v *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// PortfolioUsecase composes the aggregated view
type PortfolioUsecase interface {
	GetPortfolio(ctx context.Context) (*Portfolio, error)
}

// SingletonUpdate echoes the submitted fields together with the number of
// rows that actually changed. Changes is 0 when the table was empty.
type SingletonUpdate[T any] struct {
	Changes int64
	Fields  T
}

// MarshalJSON flattens the result to {"changes":n, <fields>}
func (u SingletonUpdate[T]) MarshalJSON() ([]byte, error) {
	fields, err := json.Marshal(u.Fields)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString(`{"changes":`)
	b.WriteString(strconv.FormatInt(u.Changes, 10))

	fields = bytes.TrimSpace(fields)
	if len(fields) < 2 || fields[0] != '{' {
		return nil, errors.New("singleton update fields must encode as a JSON object")
	}
	if inner := bytes.TrimSpace(fields[1 : len(fields)-1]); len(inner) > 0 {
		b.WriteByte(',')
		b.Write(inner)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
