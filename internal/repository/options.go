package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// OptionRepository is the shared contract of the seven catalog collections.
// All kinds have the same access shape, so one gorm-backed implementation is
// instantiated per option type. There is deliberately no delete: option ids
// are referenced by order snapshots and are never reused.
type OptionRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, rec *T) error
	Save(ctx context.Context, rec *T) error
	ExistsWhere(ctx context.Context, query string, args ...any) (bool, error)
}

type optionRepoImpl[T any] struct {
	db *gorm.DB
}

func NewOptionRepository[T any](db *gorm.DB) OptionRepository[T] {
	return &optionRepoImpl[T]{
		db: db,
	}
}

func (r *optionRepoImpl[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *optionRepoImpl[T]) Get(ctx context.Context, id uint) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *optionRepoImpl[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *optionRepoImpl[T]) Save(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *optionRepoImpl[T]) ExistsWhere(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).
		Where(query, args...).
		Count(&count).Error

	return count > 0, err
}
