package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/felixkapfer/finalghecko/modules/apperror"
)

// Result is the payload of a successful repository call together with the
// number of rows it represents.
type Result[T any] struct {
	Data  T
	Count int64
}

// Scope builds the ownership predicate of a query.
type Scope func(db *gorm.DB) *gorm.DB

// One counts the rows matched by scope and loads the single match.
// Zero rows yield NoResultFound and more than one yield MultipleResultsFound.
func One[T any](db *gorm.DB, scope Scope) (Result[*T], error) {
	q := scope(db.Model(new(T))).Session(&gorm.Session{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return Result[*T]{}, Wrap(err)
	}
	switch {
	case count == 0:
		return Result[*T]{}, apperror.NewDataError(apperror.NoResultFound, gorm.ErrRecordNotFound)
	case count > 1:
		return Result[*T]{}, apperror.NewDataError(apperror.MultipleResultsFound, ErrMultipleResults)
	}

	var out T
	if err := q.Take(&out).Error; err != nil {
		return Result[*T]{}, Wrap(err)
	}
	return Result[*T]{Data: &out, Count: 1}, nil
}

// Many counts the rows matched by scope and loads them all in the given order.
// Zero rows yield NoResultFound.
func Many[T any](db *gorm.DB, scope Scope, order string) (Result[[]T], error) {
	q := scope(db.Model(new(T))).Session(&gorm.Session{})

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return Result[[]T]{}, Wrap(err)
	}
	if count == 0 {
		return Result[[]T]{}, apperror.NewDataError(apperror.NoResultFound, gorm.ErrRecordNotFound)
	}

	var out []T
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&out).Error; err != nil {
		return Result[[]T]{}, Wrap(err)
	}
	return Result[[]T]{Data: out, Count: int64(len(out))}, nil
}

// Count returns the number of rows matched by scope. Zero rows yield
// NoResultFound, like every other read.
func Count[T any](db *gorm.DB, scope Scope) (Result[int64], error) {
	var count int64
	if err := scope(db.Model(new(T))).Count(&count).Error; err != nil {
		return Result[int64]{}, Wrap(err)
	}
	if count == 0 {
		return Result[int64]{}, apperror.NewDataError(apperror.NoResultFound, gorm.ErrRecordNotFound)
	}
	return Result[int64]{Data: count, Count: 1}, nil
}

// InTx runs fn in a transaction. Any error rolls the transaction back and is
// returned classified.
func InTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return Wrap(db.WithContext(ctx).Transaction(fn))
}

// Updated checks the outcome of an UPDATE or DELETE. A statement that touched
// no rows is reported as NoResultFound.
func Updated(result *gorm.DB) error {
	if result.Error != nil {
		return Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewDataError(apperror.NoResultFound, gorm.ErrRecordNotFound)
	}
	return nil
}
