package repository

import (
	"context"

	"gorm.io/gorm"
)

// Writers are the repositories a bulk load writes through, bound to one
// transaction.
type Writers struct {
	Footfall   FootfallRepository
	Violations ViolationRepository
}

// Transactor runs fn inside a database transaction. Returning an error from
// fn rolls back every write made through its Writers.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, w Writers) error) error
}

type transactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor over db.
func NewTransactor(db *gorm.DB) Transactor {
	return &transactor{db: db}
}

func (t *transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context, w Writers) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, Writers{
			Footfall:   &footfallRepository{db: tx},
			Violations: &violationRepository{db: tx},
		})
	})
}
