package apperror

import (
	"errors"
	"fmt"
)

// DataErrorKind identifies a failure reported by a repository.
// The numeric values are part of the wire contract and must not change.
type DataErrorKind int

// Data error kinds, in precedence order.
const (
	NoResultFound               DataErrorKind = 1
	IntegrityConstraintViolated DataErrorKind = 2
	QueryCompileError           DataErrorKind = 3
	StoreProtocolError          DataErrorKind = 4
	StoreInternalError          DataErrorKind = 5
	MultipleResultsFound        DataErrorKind = 6
	DanglingReference           DataErrorKind = 7
	NonExecutableOperation      DataErrorKind = 8
	GenericStoreError           DataErrorKind = 9
	InvalidCredentials          DataErrorKind = 10
)

var kindNames = map[DataErrorKind]string{
	NoResultFound:               "no result found",
	IntegrityConstraintViolated: "integrity constraint violated",
	QueryCompileError:           "query compile error",
	StoreProtocolError:          "store protocol error",
	StoreInternalError:          "store internal error",
	MultipleResultsFound:        "multiple results found",
	DanglingReference:           "dangling reference",
	NonExecutableOperation:      "non-executable operation",
	GenericStoreError:           "generic store error",
	InvalidCredentials:          "invalid credentials",
}

func (k DataErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("data error kind %d", int(k))
}

// Subject selects the record variant of a data error. Some kinds carry a
// user-specific wording (for example "No-User-Found" instead of "No-Result-Found").
type Subject int

const (
	SubjectRecord Subject = iota
	SubjectUser
)

// DataError is the error returned by every repository operation.
type DataError struct {
	Kind    DataErrorKind
	Subject Subject
	Err     error
}

// NewDataError creates a DataError for the record subject.
func NewDataError(kind DataErrorKind, cause error) *DataError {
	return &DataError{Kind: kind, Subject: SubjectRecord, Err: cause}
}

// NewUserError creates a DataError that renders with the user wording.
func NewUserError(kind DataErrorKind, cause error) *DataError {
	return &DataError{Kind: kind, Subject: SubjectUser, Err: cause}
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *DataError) Unwrap() error {
	return e.Err
}

// Record returns the catalog entry for the error, rendered at target.
func (e *DataError) Record(target string) Record {
	return dataRecord(e.Kind, e.Subject, target)
}

// AsUser returns a copy of the error using the user wording.
func AsUser(err error) error {
	var de *DataError
	if !errors.As(err, &de) {
		return err
	}
	cp := *de
	cp.Subject = SubjectUser
	return &cp
}

// KindOf reports the data error kind carried by err. Errors that did not come
// from a repository are reported as GenericStoreError.
func KindOf(err error) DataErrorKind {
	var de *DataError
	if errors.As(err, &de) {
		return de.Kind
	}
	return GenericStoreError
}

// RecordOf renders any error as a data error record.
func RecordOf(err error, target string) Record {
	var de *DataError
	if errors.As(err, &de) {
		return de.Record(target)
	}
	return dataRecord(GenericStoreError, SubjectRecord, target)
}
