package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/felixkapfer/finalghecko/modules/apperror"
)

type note struct {
	ID      uint `gorm:"primaryKey"`
	OwnerID string
	Label   string
}

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(Config{Driver: DriverSQLite, DSN: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&note{}))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func byOwner(owner string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", owner)
	}
}

func TestOne_ArityProtocol(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]note{
		{OwnerID: "single", Label: "a"},
		{OwnerID: "double", Label: "b"},
		{OwnerID: "double", Label: "c"},
	}).Error)

	_, err := One[note](db, byOwner("nobody"))
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))

	res, err := One[note](db, byOwner("single"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Count)
	assert.Equal(t, "a", res.Data.Label)

	_, err = One[note](db, byOwner("double"))
	assert.Equal(t, apperror.MultipleResultsFound, apperror.KindOf(err))
	assert.ErrorIs(t, err, ErrMultipleResults)
}

func TestMany(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]note{
		{OwnerID: "o1", Label: "b"},
		{OwnerID: "o1", Label: "a"},
		{OwnerID: "o2", Label: "c"},
	}).Error)

	res, err := Many[note](db, byOwner("o1"), "label")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Count)
	assert.Equal(t, "a", res.Data[0].Label)
	assert.Equal(t, "b", res.Data[1].Label)

	_, err = Many[note](db, byOwner("o3"), "")
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))
}

func TestCount(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&[]note{{OwnerID: "o1"}, {OwnerID: "o1"}}).Error)

	res, err := Count[note](db, byOwner("o1"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Data)

	_, err = Count[note](db, byOwner("o2"))
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))
}

func TestInTx_RollsBack(t *testing.T) {
	db := setupTestDB(t)

	err := InTx(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(&note{OwnerID: "o1", Label: "partial"}).Error; err != nil {
			return err
		}
		return errors.New("late failure")
	})
	require.Error(t, err)
	assert.Equal(t, apperror.GenericStoreError, apperror.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&note{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdated(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&note{OwnerID: "o1", Label: "a"}).Error)

	err := Updated(db.Model(&note{}).Where("owner_id = ?", "o2").Update("label", "x"))
	assert.Equal(t, apperror.NoResultFound, apperror.KindOf(err))

	err = Updated(db.Model(&note{}).Where("owner_id = ?", "o1").Update("label", "x"))
	assert.NoError(t, err)
}

func TestWrap_UniqueViolationFromDriver(t *testing.T) {
	db := setupTestDB(t)
	type uniqueNote struct {
		ID    uint   `gorm:"primaryKey"`
		Email string `gorm:"uniqueIndex"`
	}
	require.NoError(t, db.AutoMigrate(&uniqueNote{}))
	require.NoError(t, db.Create(&uniqueNote{Email: "a@b.de"}).Error)

	err := Wrap(db.Create(&uniqueNote{Email: "a@b.de"}).Error)
	assert.Equal(t, apperror.IntegrityConstraintViolated, apperror.KindOf(err))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Failure
	}{
		{"nil", nil, FailureNone},
		{"record not found", gorm.ErrRecordNotFound, FailureNoRows},
		{"wrapped not found", fmt.Errorf("find: %w", gorm.ErrRecordNotFound), FailureNoRows},
		{"duplicated key", gorm.ErrDuplicatedKey, FailureConstraint},
		{"check constraint", gorm.ErrCheckConstraintViolated, FailureConstraint},
		{"foreign key", gorm.ErrForeignKeyViolated, FailureDanglingReference},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, FailureConstraint},
		{"sqlite foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, FailureDanglingReference},
		{"sqlite syntax", sqlite3.Error{Code: sqlite3.ErrError}, FailureCompile},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, FailureProtocol},
		{"sqlite corrupt", sqlite3.Error{Code: sqlite3.ErrCorrupt}, FailureInternal},
		{"sqlite mismatch", sqlite3.Error{Code: sqlite3.ErrMismatch}, FailureNotExecutable},
		{"sqlite abort", sqlite3.Error{Code: sqlite3.ErrAbort}, FailureUnknown},
		{"pg unique", &pgconn.PgError{Code: "23505"}, FailureConstraint},
		{"pg foreign key", &pgconn.PgError{Code: "23503"}, FailureDanglingReference},
		{"pg undefined column", &pgconn.PgError{Code: "42703"}, FailureCompile},
		{"pg connection", &pgconn.PgError{Code: "08006"}, FailureProtocol},
		{"pg internal", &pgconn.PgError{Code: "XX000"}, FailureInternal},
		{"pg cardinality", &pgconn.PgError{Code: "21000"}, FailureMultipleRows},
		{"pg data exception", &pgconn.PgError{Code: "22P02"}, FailureNotExecutable},
		{"bad conn", driver.ErrBadConn, FailureProtocol},
		{"multiple results", ErrMultipleResults, FailureMultipleRows},
		{"missing where", gorm.ErrMissingWhereClause, FailureNotExecutable},
		{"invalid field", gorm.ErrInvalidField, FailureCompile},
		{"unknown", errors.New("boom"), FailureUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestFailure_Kind(t *testing.T) {
	tests := []struct {
		failure Failure
		want    apperror.DataErrorKind
	}{
		{FailureNoRows, apperror.NoResultFound},
		{FailureConstraint, apperror.IntegrityConstraintViolated},
		{FailureCompile, apperror.QueryCompileError},
		{FailureProtocol, apperror.StoreProtocolError},
		{FailureInternal, apperror.StoreInternalError},
		{FailureMultipleRows, apperror.MultipleResultsFound},
		{FailureDanglingReference, apperror.DanglingReference},
		{FailureNotExecutable, apperror.NonExecutableOperation},
		{FailureUnknown, apperror.GenericStoreError},
	}
	for _, tt := range tests {
		if got := tt.failure.Kind(); got != tt.want {
			t.Errorf("Failure(%d).Kind() = %v, want %v", tt.failure, got, tt.want)
		}
	}
}

func TestWrap_KeepsClassifiedErrors(t *testing.T) {
	original := apperror.NewUserError(apperror.NoResultFound, nil)
	assert.Same(t, original, Wrap(original))
	assert.Nil(t, Wrap(nil))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "app.db?cache=shared&_foreign_keys=on", sqliteDSN("app.db?cache=shared"))
	assert.Equal(t, "app.db?_foreign_keys=off", sqliteDSN("app.db?_foreign_keys=off"))
	assert.Equal(t, "tasktracker.db?_foreign_keys=on", sqliteDSN(""))
}
