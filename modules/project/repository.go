package project

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/felixkapfer/finalghecko/domain/project"
	"github.com/felixkapfer/finalghecko/domain/task"
	"github.com/felixkapfer/finalghecko/modules/store"
)

// Patch lists the project fields an update may change. Nil fields are kept.
type Patch struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (p Patch) changes() map[string]any {
	out := map[string]any{}
	if p.Title != nil {
		out["title"] = *p.Title
	}
	if p.Description != nil {
		out["description"] = *p.Description
	}
	if p.StartDate != nil {
		out["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		out["end_date"] = *p.EndDate
	}
	return out
}

// Repository handles project persistence. Every lookup is scoped to the owner.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new project repository on the shared handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func byOwner(ownerID string) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

func byOwnerAndID(ownerID, id string) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ? AND id = ?", ownerID, id)
	}
}

func all(db *gorm.DB) *gorm.DB {
	return db
}

// Create stores a new project.
func (r *Repository) Create(ctx context.Context, p *domain.Project) (store.Result[*domain.Project], error) {
	if err := store.InTx(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Omit("Owner").Create(p).Error
	}); err != nil {
		return store.Result[*domain.Project]{}, err
	}
	return store.Result[*domain.Project]{Data: p, Count: 1}, nil
}

// Get loads one project of the owner.
func (r *Repository) Get(ctx context.Context, ownerID, id string) (store.Result[*domain.Project], error) {
	return store.One[domain.Project](r.db.WithContext(ctx), byOwnerAndID(ownerID, id))
}

// ListByOwner returns the owner's projects ordered by start date.
func (r *Repository) ListByOwner(ctx context.Context, ownerID string) (store.Result[[]domain.Project], error) {
	return store.Many[domain.Project](r.db.WithContext(ctx), byOwner(ownerID), "start_date, created_at")
}

// ListAll returns the projects of every owner.
func (r *Repository) ListAll(ctx context.Context) (store.Result[[]domain.Project], error) {
	return store.Many[domain.Project](r.db.WithContext(ctx), all, "created_at, id")
}

// Update applies the patch and returns the stored project. An empty patch
// still proves ownership and returns the project unchanged.
func (r *Repository) Update(ctx context.Context, ownerID, id string, patch Patch) (store.Result[*domain.Project], error) {
	changes := patch.changes()
	if len(changes) == 0 {
		return r.Get(ctx, ownerID, id)
	}

	var out store.Result[*domain.Project]
	err := store.InTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := store.Updated(byOwnerAndID(ownerID, id)(tx.Model(&domain.Project{})).Updates(changes)); err != nil {
			return err
		}
		res, err := store.One[domain.Project](tx, byOwnerAndID(ownerID, id))
		out = res
		return err
	})
	if err != nil {
		return store.Result[*domain.Project]{}, err
	}
	return out, nil
}

// Delete removes the project and its tasks in one transaction and returns
// the deleted project.
func (r *Repository) Delete(ctx context.Context, ownerID, id string) (store.Result[*domain.Project], error) {
	var out store.Result[*domain.Project]
	err := store.InTx(ctx, r.db, func(tx *gorm.DB) error {
		res, err := store.One[domain.Project](tx, byOwnerAndID(ownerID, id))
		if err != nil {
			return err
		}
		out = res
		if err := tx.Where("owner_id = ? AND project_id = ?", ownerID, id).Delete(&task.Task{}).Error; err != nil {
			return err
		}
		return store.Updated(byOwnerAndID(ownerID, id)(tx).Delete(&domain.Project{}))
	})
	if err != nil {
		return store.Result[*domain.Project]{}, err
	}
	return out, nil
}
