package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/felixkapfer/finalghecko/modules/apperror"
)

// ErrMultipleResults is the cause attached when a scoped lookup matches more
// than one row.
var ErrMultipleResults = errors.New("more than one row matched a single-row lookup")

// Failure is the store adapter's own classification of a driver error.
type Failure int

const (
	FailureNone Failure = iota
	FailureNoRows
	FailureConstraint
	FailureCompile
	FailureProtocol
	FailureInternal
	FailureMultipleRows
	FailureDanglingReference
	FailureNotExecutable
	FailureUnknown
)

// Kind maps the failure onto the public data error kind.
func (f Failure) Kind() apperror.DataErrorKind {
	switch f {
	case FailureNoRows:
		return apperror.NoResultFound
	case FailureConstraint:
		return apperror.IntegrityConstraintViolated
	case FailureCompile:
		return apperror.QueryCompileError
	case FailureProtocol:
		return apperror.StoreProtocolError
	case FailureInternal:
		return apperror.StoreInternalError
	case FailureMultipleRows:
		return apperror.MultipleResultsFound
	case FailureDanglingReference:
		return apperror.DanglingReference
	case FailureNotExecutable:
		return apperror.NonExecutableOperation
	default:
		return apperror.GenericStoreError
	}
}

// Classify inspects a GORM, SQLite or PostgreSQL error. The checks run in
// precedence order, so an error matching several categories gets the first.
func Classify(err error) Failure {
	switch {
	case err == nil:
		return FailureNone
	case isNoRows(err):
		return FailureNoRows
	case isConstraint(err):
		return FailureConstraint
	case isCompile(err):
		return FailureCompile
	case isProtocol(err):
		return FailureProtocol
	case isInternal(err):
		return FailureInternal
	case errors.Is(err, ErrMultipleResults) || pgClass(err, "21"):
		return FailureMultipleRows
	case isDanglingReference(err):
		return FailureDanglingReference
	case isNotExecutable(err):
		return FailureNotExecutable
	default:
		return FailureUnknown
	}
}

// Wrap converts a store error into an *apperror.DataError. Errors that are
// already classified pass through unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var de *apperror.DataError
	if errors.As(err, &de) {
		return err
	}
	return apperror.NewDataError(Classify(err).Kind(), err)
}

func isNoRows(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows)
}

func isConstraint(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	if e, ok := sqliteError(err); ok {
		return e.Code == sqlite3.ErrConstraint && e.ExtendedCode != sqlite3.ErrConstraintForeignKey
	}
	return pgClass(err, "23") && !pgCode(err, "23503")
}

func isCompile(err error) bool {
	if errors.Is(err, gorm.ErrInvalidField) || errors.Is(err, gorm.ErrUnsupportedRelation) {
		return true
	}
	if e, ok := sqliteError(err); ok {
		// SQLITE_ERROR is the generic "SQL logic error": syntax errors, unknown
		// columns and missing tables.
		return e.Code == sqlite3.ErrError || e.Code == sqlite3.ErrSchema
	}
	return pgClass(err, "42")
}

func isProtocol(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, sql.ErrTxDone) ||
		errors.Is(err, gorm.ErrInvalidTransaction) || errors.Is(err, gorm.ErrInvalidDB) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if e, ok := sqliteError(err); ok {
		switch e.Code {
		case sqlite3.ErrMisuse, sqlite3.ErrProtocol, sqlite3.ErrCantOpen, sqlite3.ErrBusy,
			sqlite3.ErrLocked, sqlite3.ErrIoErr, sqlite3.ErrReadonly, sqlite3.ErrPerm, sqlite3.ErrAuth:
			return true
		}
		return false
	}
	return pgClass(err, "08") || pgClass(err, "57") || pgClass(err, "28")
}

func isInternal(err error) bool {
	if e, ok := sqliteError(err); ok {
		switch e.Code {
		case sqlite3.ErrInternal, sqlite3.ErrCorrupt, sqlite3.ErrNomem, sqlite3.ErrFull, sqlite3.ErrNotADB:
			return true
		}
		return false
	}
	return pgClass(err, "XX") || pgClass(err, "53") || pgClass(err, "58")
}

func isDanglingReference(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if e, ok := sqliteError(err); ok {
		return e.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return pgCode(err, "23503")
}

func isNotExecutable(err error) bool {
	if errors.Is(err, gorm.ErrMissingWhereClause) || errors.Is(err, gorm.ErrModelValueRequired) ||
		errors.Is(err, gorm.ErrPrimaryKeyRequired) || errors.Is(err, gorm.ErrEmptySlice) ||
		errors.Is(err, gorm.ErrNotImplemented) || errors.Is(err, gorm.ErrInvalidData) ||
		errors.Is(err, gorm.ErrInvalidValue) || errors.Is(err, gorm.ErrInvalidValueOfLength) {
		return true
	}
	if e, ok := sqliteError(err); ok {
		return e.Code == sqlite3.ErrMismatch || e.Code == sqlite3.ErrRange || e.Code == sqlite3.ErrTooBig
	}
	return pgClass(err, "22")
}

func sqliteError(err error) (sqlite3.Error, bool) {
	var e sqlite3.Error
	if errors.As(err, &e) {
		return e, true
	}
	var p *sqlite3.Error
	if errors.As(err, &p) && p != nil {
		return *p, true
	}
	return sqlite3.Error{}, false
}

func pgClass(err error, class string) bool {
	var e *pgconn.PgError
	return errors.As(err, &e) && strings.HasPrefix(e.Code, class)
}

func pgCode(err error, code string) bool {
	var e *pgconn.PgError
	return errors.As(err, &e) && e.Code == code
}
