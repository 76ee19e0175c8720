package errors

import (
	"errors"
)

var (
	ErrCategoryNotFound = errors.New("Category not found")
	ErrExpenseNotFound  = errors.New("Expense not found")
	ErrCategoryInUse    = errors.New("Category is referenced by existing expenses")
)

// MissingFieldError signals a required create field that is absent or
// carries a falsy value. Rendered to clients under the "message" key.
type MissingFieldError struct {
	Field string
	Msg   string
}

func (e *MissingFieldError) Error() string {
	return e.Msg
}

func NewMissingFieldError(field, msg string) error {
	return &MissingFieldError{Field: field, Msg: msg}
}

func IsMissingFieldError(err error) bool {
	var missingFieldError *MissingFieldError
	ok := errors.As(err, &missingFieldError)
	return ok
}

// FieldError signals a field that is present but unparsable or of the
// wrong kind. Rendered to clients under the "error" key.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return e.Msg
}

func NewFieldError(field, msg string) error {
	return &FieldError{Field: field, Msg: msg}
}

func IsFieldError(err error) bool {
	var fieldError *FieldError
	ok := errors.As(err, &fieldError)
	return ok
}

// PersistenceError wraps a constraint violation reported by the store at
// commit time, e.g. a duplicate category name for one user. The driver
// message is surfaced to the caller.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func NewPersistenceError(err error) error {
	return &PersistenceError{Err: err}
}

func IsPersistenceError(err error) bool {
	var persistenceError *PersistenceError
	ok := errors.As(err, &persistenceError)
	return ok
}
