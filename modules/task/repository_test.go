package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/felixkapfer/finalghecko/domain/project"
	domain "github.com/felixkapfer/finalghecko/domain/task"
	"github.com/felixkapfer/finalghecko/domain/user"
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

// seedProject inserts a user owning one project and returns both ids.
func seedProject(t *testing.T, db *gorm.DB) (ownerID, projectID string) {
	t.Helper()

	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.New().String(),
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        uuid.New().String() + "@example.com",
		ImageFile:    user.DefaultImageFile,
		PasswordHash: "hash",
		CreatedAt:    now,
	}
	require.NoError(t, db.Create(u).Error)

	p := &project.Project{
		ID:          uuid.New().String(),
		OwnerID:     u.ID,
		Title:       "Compiler",
		Description: "Write the first compiler",
		StartDate:   now,
		EndDate:     now.AddDate(0, 6, 0),
		CreatedAt:   now,
	}
	require.NoError(t, db.Omit("Owner").Create(p).Error)
	return u.ID, p.ID
}

func newTask(ownerID, projectID, title string, status domain.Status) *domain.Task {
	now := time.Now().UTC()
	return &domain.Task{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		ProjectID:    projectID,
		Title:        title,
		Description:  "Something that needs doing",
		Status:       status,
		EndDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:    now,
		LastModified: now,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	owner, proj := seedProject(t, db)

	tk := newTask(owner, proj, "Lexer", domain.StatusTodo)
	_, err := repo.Create(ctx, tk)
	require.NoError(t, err)

	res, err := repo.Get(ctx, owner, proj, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Count)
	view := res.Data.View()
	assert.Equal(t, "Lexer", view.Title)
	assert.Equal(t, domain.StatusTodo, view.Status)
	assert.Equal(t, "2024-03-01", view.EndDate)
	assert.Equal(t, proj, view.ProjectID)
}

func TestRepository_Create_ForeignProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	owner, _ := seedProject(t, db)
	_, foreignProject := seedProject(t, db)

	_, err := repo.Create(context.Background(), newTask(owner, foreignProject, "Sneaky", domain.StatusTodo))
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&domain.Task{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRepository_OwnershipIsolation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	owner, proj := seedProject(t, db)
	stranger, strangerProj := seedProject(t, db)

	tk := newTask(owner, proj, "Parser", domain.StatusTodo)
	_, err := repo.Create(ctx, tk)
	require.NoError(t, err)

	tests := []struct {
		name  string
		owner string
		proj  string
	}{
		{"other owner", stranger, proj},
		{"other project", owner, strangerProj},
		{"other owner and project", stranger, strangerProj},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Get(ctx, tt.owner, tt.proj, tk.ID)
			assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))

			title := "Stolen"
			_, _, err = repo.Update(ctx, tt.owner, tt.proj, tk.ID, Patch{Title: &title, Modified: time.Now()})
			assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))

			_, err = repo.Delete(ctx, tt.owner, tt.proj, tk.ID)
			assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))
		})
	}

	res, err := repo.Get(ctx, owner, proj, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, "Parser", res.Data.Title)
}

func TestRepository_Lists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	owner, proj := seedProject(t, db)

	_, err := repo.ListByProject(ctx, owner, proj)
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))

	for _, tk := range []*domain.Task{
		newTask(owner, proj, "One", domain.StatusTodo),
		newTask(owner, proj, "Two", domain.StatusFinished),
		newTask(owner, proj, "Three", domain.StatusFinished),
	} {
		_, err := repo.Create(ctx, tk)
		require.NoError(t, err)
	}

	byProject, err := repo.ListByProject(ctx, owner, proj)
	require.NoError(t, err)
	assert.Equal(t, int64(3), byProject.Count)

	byOwner, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, byOwner.Data, 3)

	finished, err := repo.ListByStatus(ctx, owner, proj, domain.StatusFinished)
	require.NoError(t, err)
	assert.Equal(t, int64(2), finished.Count)

	_, err = repo.ListByStatus(ctx, owner, proj, domain.StatusInProgress)
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))

	count, err := repo.CountByStatus(ctx, owner, "", domain.StatusFinished)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Data)

	everything, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), everything.Count)
}

func TestRepository_UpdateIsPartial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	owner, proj := seedProject(t, db)

	tk := newTask(owner, proj, "Linker", domain.StatusTodo)
	_, err := repo.Create(ctx, tk)
	require.NoError(t, err)

	later := tk.LastModified.Add(time.Hour)
	desc := "Link all the object files"
	res, previous, err := repo.Update(ctx, owner, proj, tk.ID, Patch{Description: &desc, Modified: later})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTodo, previous)
	assert.Equal(t, desc, res.Data.Description)
	assert.Equal(t, "Linker", res.Data.Title)
	assert.Equal(t, domain.StatusTodo, res.Data.Status)
	assert.True(t, res.Data.LastModified.Equal(later), "last modified %v, want %v", res.Data.LastModified, later)

	unchanged, _, err := repo.Update(ctx, owner, proj, tk.ID, Patch{Modified: later.Add(time.Hour)})
	require.NoError(t, err)
	assert.True(t, unchanged.Data.LastModified.Equal(later))
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	owner, proj := seedProject(t, db)

	tk := newTask(owner, proj, "Loader", domain.StatusInProgress)
	_, err := repo.Create(ctx, tk)
	require.NoError(t, err)

	res, err := repo.Delete(ctx, owner, proj, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, tk.ID, res.Data.ID)

	_, err = repo.Get(ctx, owner, proj, tk.ID)
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))
}
