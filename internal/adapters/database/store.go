// Package database implements the content store on GORM/MySQL. Liveness is
// enforced with an explicit deleted_at IS NULL predicate on every read; no
// ambient soft-delete rewriting is used.
package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sonet/internal/core/apperr"
	"sonet/internal/ports/content"
)

type ContentStoreDatabase struct {
	db *gorm.DB
}

func NewContentStoreDatabase(db *gorm.DB) *ContentStoreDatabase {
	return &ContentStoreDatabase{db: db}
}

// WithTx runs fn against a store bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *ContentStoreDatabase) WithTx(ctx context.Context, fn func(content.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ContentStoreDatabase{db: tx})
	})
}

// notFound translates gorm's record-not-found into the taxonomy; other store
// failures pass through unchanged.
func notFound(err error, entity, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &apperr.NotFound{Entity: entity, ID: id}
	}
	return err
}
