// Package repository holds the GORM implementations of the service ports.
//
// Every repository resolves its connection through conn, so calls made inside
// Transactor.WithinTransaction share the transaction carried by the context.
package repository

import (
	"context"
	"errors"
	"fmt"

	"kitchenpos/apperror"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor runs units of work in a single database transaction.
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
// Nested calls reuse the outer transaction through a savepoint.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return conn(ctx, t.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// notFound converts gorm.ErrRecordNotFound into a coded NotFound error and
// passes every other error through unchanged.
func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.Wrap(apperror.CodeNotFound, fmt.Sprintf("%s %d not found", what, id), err)
	}
	return err
}
