package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/felixkapfer/finalghecko/domain/user"
	"github.com/felixkapfer/finalghecko/modules/apperror"
	"github.com/felixkapfer/finalghecko/modules/store"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := store.Open(store.Config{Driver: store.DriverSQLite, DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(db) })
	return db
}

func newUser(email string) *domain.User {
	return &domain.User{
		ID:           uuid.New().String(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		ImageFile:    domain.DefaultImageFile,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestRepository_CreateAndFind(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	u := newUser("ada@example.com")
	res, err := repo.Create(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Count)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", byID.Data.Email)

	byMail, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byMail.Data.ID)
}

func TestRepository_Create_DuplicateEmail(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("ada@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser("ada@example.com"))
	require.Error(t, err)
	assert.Equal(t, apperror.IntegrityConstraintViolated, apperror.KindOf(err))
	assert.Equal(t, "02-2", apperror.RecordOf(err, "#Register-Feedback-Error").Code)
}

func TestRepository_FindByEmail_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.Equal(t, "01-2", apperror.RecordOf(err, "").Code)
}

func TestRepository_Update(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	u := newUser("ada@example.com")
	_, err := repo.Create(ctx, u)
	require.NoError(t, err)

	first := "Augusta"
	res, err := repo.Update(ctx, u.ID, Patch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", res.Data.FirstName)
	assert.Equal(t, "Lovelace", res.Data.LastName)

	unchanged, err := repo.Update(ctx, u.ID, Patch{})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", unchanged.Data.FirstName)

	_, err = repo.Update(ctx, uuid.New().String(), Patch{FirstName: &first})
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	u := newUser("ada@example.com")
	_, err := repo.Create(ctx, u)
	require.NoError(t, err)

	res, err := repo.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.Data.ID)

	_, err = repo.FindByID(ctx, u.ID)
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))

	_, err = repo.Delete(ctx, u.ID)
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))
}

func TestRepository_List(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	_, err := repo.List(ctx)
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := repo.Create(ctx, newUser(email))
		require.NoError(t, err)
	}

	res, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Count)
}
