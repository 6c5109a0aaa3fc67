package task

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/felixkapfer/finalghecko/domain/project"
	domain "github.com/felixkapfer/finalghecko/domain/task"
	"github.com/felixkapfer/finalghecko/modules/store"
)

// Patch lists the task fields an update may change. Nil fields are kept and
// Modified is written only when something else changes.
type Patch struct {
	Title       *string
	Description *string
	Status      *domain.Status
	EndDate     *time.Time
	Modified    time.Time
}

func (p Patch) changes() map[string]any {
	out := map[string]any{}
	if p.Title != nil {
		out["title"] = *p.Title
	}
	if p.Description != nil {
		out["description"] = *p.Description
	}
	if p.Status != nil {
		out["status"] = *p.Status
	}
	if p.EndDate != nil {
		out["end_date"] = *p.EndDate
	}
	if len(out) > 0 {
		out["last_modified"] = p.Modified
	}
	return out
}

// Repository handles task persistence. Lookups always match the owner, and
// single-task lookups also match the project.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository on the shared handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

const listOrder = "end_date, created_at"

func byOwner(ownerID string) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

func byProject(ownerID, projectID string) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ? AND project_id = ?", ownerID, projectID)
	}
}

func byID(ownerID, projectID, id string) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ? AND project_id = ? AND id = ?", ownerID, projectID, id)
	}
}

// byStatus narrows to one status. An empty projectID spans every project.
func byStatus(ownerID, projectID string, status domain.Status) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		q := db.Where("owner_id = ? AND status = ?", ownerID, status)
		if projectID != "" {
			q = q.Where("project_id = ?", projectID)
		}
		return q
	}
}

func all(db *gorm.DB) *gorm.DB {
	return db
}

func ownedProject(ownerID, projectID string) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ? AND id = ?", ownerID, projectID)
	}
}

// Create stores a new task after checking that its project belongs to the
// owner.
func (r *Repository) Create(ctx context.Context, t *domain.Task) (store.Result[*domain.Task], error) {
	if err := store.InTx(ctx, r.db, func(tx *gorm.DB) error {
		if _, err := store.Count[project.Project](tx, ownedProject(t.OwnerID, t.ProjectID)); err != nil {
			return err
		}
		return tx.Omit("Owner", "Project").Create(t).Error
	}); err != nil {
		return store.Result[*domain.Task]{}, err
	}
	return store.Result[*domain.Task]{Data: t, Count: 1}, nil
}

// Get loads one task.
func (r *Repository) Get(ctx context.Context, ownerID, projectID, id string) (store.Result[*domain.Task], error) {
	return store.One[domain.Task](r.db.WithContext(ctx), byID(ownerID, projectID, id))
}

// ListByOwner returns the owner's tasks across all projects.
func (r *Repository) ListByOwner(ctx context.Context, ownerID string) (store.Result[[]domain.Task], error) {
	return store.Many[domain.Task](r.db.WithContext(ctx), byOwner(ownerID), listOrder)
}

// ListByProject returns the tasks of one project.
func (r *Repository) ListByProject(ctx context.Context, ownerID, projectID string) (store.Result[[]domain.Task], error) {
	return store.Many[domain.Task](r.db.WithContext(ctx), byProject(ownerID, projectID), listOrder)
}

// ListByStatus returns the tasks of one project in one status.
func (r *Repository) ListByStatus(ctx context.Context, ownerID, projectID string, status domain.Status) (store.Result[[]domain.Task], error) {
	return store.Many[domain.Task](r.db.WithContext(ctx), byStatus(ownerID, projectID, status), listOrder)
}

// ListAll returns the tasks of every owner.
func (r *Repository) ListAll(ctx context.Context) (store.Result[[]domain.Task], error) {
	return store.Many[domain.Task](r.db.WithContext(ctx), all, "created_at, id")
}

// CountByStatus counts the owner's tasks in status, optionally inside one
// project.
func (r *Repository) CountByStatus(ctx context.Context, ownerID, projectID string, status domain.Status) (store.Result[int64], error) {
	return store.Count[domain.Task](r.db.WithContext(ctx), byStatus(ownerID, projectID, status))
}

// Update applies the patch and returns the stored task together with the
// status it had before. An empty patch returns the task unchanged.
func (r *Repository) Update(ctx context.Context, ownerID, projectID, id string, patch Patch) (store.Result[*domain.Task], domain.Status, error) {
	changes := patch.changes()
	if len(changes) == 0 {
		res, err := r.Get(ctx, ownerID, projectID, id)
		if err != nil {
			return res, "", err
		}
		return res, res.Data.Status, nil
	}

	var (
		out      store.Result[*domain.Task]
		previous domain.Status
	)
	scope := byID(ownerID, projectID, id)
	err := store.InTx(ctx, r.db, func(tx *gorm.DB) error {
		before, err := store.One[domain.Task](tx, scope)
		if err != nil {
			return err
		}
		previous = before.Data.Status

		if err := store.Updated(scope(tx.Model(&domain.Task{})).Updates(changes)); err != nil {
			return err
		}
		out, err = store.One[domain.Task](tx, scope)
		return err
	})
	if err != nil {
		return store.Result[*domain.Task]{}, "", err
	}
	return out, previous, nil
}

// Delete removes one task and returns it.
func (r *Repository) Delete(ctx context.Context, ownerID, projectID, id string) (store.Result[*domain.Task], error) {
	var out store.Result[*domain.Task]
	scope := byID(ownerID, projectID, id)
	err := store.InTx(ctx, r.db, func(tx *gorm.DB) error {
		res, err := store.One[domain.Task](tx, scope)
		if err != nil {
			return err
		}
		out = res
		return store.Updated(scope(tx).Delete(&domain.Task{}))
	})
	if err != nil {
		return store.Result[*domain.Task]{}, err
	}
	return out, nil
}
