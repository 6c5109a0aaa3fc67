package activity

import (
	"context"

	"gorm.io/gorm"

	"github.com/felixkapfer/finalghecko/modules/store"
)

// Repository persists activity entries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new activity repository on the shared handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the activity table.
func (r *Repository) Migrate() error {
	return store.Migrate(r.db, &Entry{})
}

// Append stores one entry.
func (r *Repository) Append(ctx context.Context, e *Entry) error {
	return store.InTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Omit("Owner").Create(e).Error
	})
}

// ListByOwner returns the owner's entries, newest first.
func (r *Repository) ListByOwner(ctx context.Context, ownerID string) (store.Result[[]Entry], error) {
	return store.Many[Entry](r.db.WithContext(ctx), func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}, "occurred_at DESC, id")
}
