package usecase

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type singletonUsecase[T any] struct {
	repo  domain.SingletonRepository[T]
	empty func() T
}

// NewSingletonUsecase creates a usecase for a singleton resource. empty builds
// the shape served while the table has no row.
func NewSingletonUsecase[T any](repo domain.SingletonRepository[T], empty func() T) domain.SingletonUsecase[T] {
	return &singletonUsecase[T]{repo: repo, empty: empty}
}

// Get never fails on absence; it falls back to the empty shape
func (uc *singletonUsecase[T]) Get(ctx context.Context) (*T, error) {
	v, err := uc.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			e := uc.empty()
			return &e, nil
		}
		return nil, apperror.Storage(err)
	}
	return v, nil
}

func (uc *singletonUsecase[T]) Replace(ctx context.Context, v *T) (*T, error) {
	if err := uc.repo.Replace(ctx, v); err != nil {
		return nil, apperror.Storage(err)
	}
	return v, nil
}

// Update echoes v even when nothing changed; callers inspect Changes
func (uc *singletonUsecase[T]) Update(ctx context.Context, v *T) (*domain.SingletonUpdate[T], error) {
	changes, err := uc.repo.Update(ctx, v)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return &domain.SingletonUpdate[T]{Changes: changes, Fields: *v}, nil
}

func (uc *singletonUsecase[T]) Delete(ctx context.Context) error {
	if err := uc.repo.DeleteAll(ctx); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

type collectionUsecase[T any] struct {
	repo            domain.CollectionRepository[T]
	notFoundMessage string
}

// NewCollectionUsecase creates a usecase for a multi-row resource.
// notFoundMessage is returned to clients when an id matches no row.
func NewCollectionUsecase[T any](repo domain.CollectionRepository[T], notFoundMessage string) domain.CollectionUsecase[T] {
	return &collectionUsecase[T]{repo: repo, notFoundMessage: notFoundMessage}
}

func (uc *collectionUsecase[T]) List(ctx context.Context) ([]T, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return rows, nil
}

func (uc *collectionUsecase[T]) Get(ctx context.Context, id int64) (*T, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, uc.translate(err)
	}
	return v, nil
}

func (uc *collectionUsecase[T]) Create(ctx context.Context, v *T) (*T, error) {
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, apperror.Storage(err)
	}
	return v, nil
}

func (uc *collectionUsecase[T]) Update(ctx context.Context, id int64, v *T) (*T, error) {
	if err := uc.repo.Update(ctx, id, v); err != nil {
		return nil, uc.translate(err)
	}
	return v, nil
}

func (uc *collectionUsecase[T]) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return uc.translate(err)
	}
	return nil
}

func (uc *collectionUsecase[T]) translate(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(uc.notFoundMessage)
	}
	return apperror.Storage(err)
}
