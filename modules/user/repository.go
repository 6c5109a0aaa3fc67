package user

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/felixkapfer/finalghecko/domain/user"
	"github.com/felixkapfer/finalghecko/modules/apperror"
	"github.com/felixkapfer/finalghecko/modules/store"
)

// Patch lists the account fields an update may change. Nil fields are kept.
type Patch struct {
	FirstName *string
	LastName  *string
}

func (p Patch) changes() map[string]any {
	out := map[string]any{}
	if p.FirstName != nil {
		out["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		out["last_name"] = *p.LastName
	}
	return out
}

// Repository handles account persistence. Every error it returns is an
// *apperror.DataError with the user subject.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new user repository on the shared handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func byID(id string) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func byEmail(email string) store.Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email)
	}
}

// Create stores a new account. An address that is already registered yields
// IntegrityConstraintViolated before the insert is attempted.
func (r *Repository) Create(ctx context.Context, u *domain.User) (store.Result[*domain.User], error) {
	err := store.InTx(ctx, r.db, func(tx *gorm.DB) error {
		var count int64
		if err := byEmail(u.Email)(tx.Model(&domain.User{})).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.NewUserError(apperror.IntegrityConstraintViolated, gorm.ErrDuplicatedKey)
		}
		return tx.Create(u).Error
	})
	if err != nil {
		return store.Result[*domain.User]{}, apperror.AsUser(err)
	}
	return store.Result[*domain.User]{Data: u, Count: 1}, nil
}

// FindByID loads the account with the given id.
func (r *Repository) FindByID(ctx context.Context, id string) (store.Result[*domain.User], error) {
	res, err := store.One[domain.User](r.db.WithContext(ctx), byID(id))
	return res, apperror.AsUser(err)
}

// FindByEmail loads the account registered under email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (store.Result[*domain.User], error) {
	res, err := store.One[domain.User](r.db.WithContext(ctx), byEmail(email))
	return res, apperror.AsUser(err)
}

// List returns every account ordered by registration.
func (r *Repository) List(ctx context.Context) (store.Result[[]domain.User], error) {
	res, err := store.Many[domain.User](r.db.WithContext(ctx), func(db *gorm.DB) *gorm.DB { return db }, "created_at, id")
	return res, apperror.AsUser(err)
}

// Update applies the patch to the account and returns the stored result.
// An empty patch returns the account unchanged.
func (r *Repository) Update(ctx context.Context, id string, patch Patch) (store.Result[*domain.User], error) {
	changes := patch.changes()
	if len(changes) == 0 {
		return r.FindByID(ctx, id)
	}

	var out store.Result[*domain.User]
	err := store.InTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := store.Updated(byID(id)(tx.Model(&domain.User{})).Updates(changes)); err != nil {
			return err
		}
		res, err := store.One[domain.User](tx, byID(id))
		out = res
		return err
	})
	if err != nil {
		return store.Result[*domain.User]{}, apperror.AsUser(err)
	}
	return out, nil
}

// Delete removes the account. Projects and tasks go with it through the
// cascading foreign keys. The deleted account is returned.
func (r *Repository) Delete(ctx context.Context, id string) (store.Result[*domain.User], error) {
	var out store.Result[*domain.User]
	err := store.InTx(ctx, r.db, func(tx *gorm.DB) error {
		res, err := store.One[domain.User](tx, byID(id))
		if err != nil {
			return err
		}
		out = res
		return store.Updated(byID(id)(tx).Delete(&domain.User{}))
	})
	if err != nil {
		return store.Result[*domain.User]{}, apperror.AsUser(err)
	}
	return out, nil
}
