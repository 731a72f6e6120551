// Package common defines sentinel errors shared by the storage layers of the
// time tracking client. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports that the store could not be initialized
	// (journal mode or schema migration failure). The store is unusable.
	ErrConfiguration = errors.New("configuration error")

	// ErrConstraintViolation reports a unique identity conflict, e.g. a
	// duplicate GUID or remote id within one account.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInvalidArgument is returned before any write when input is rejected.
	ErrInvalidArgument = errors.New("invalid argument")
)

// StorageError wraps a driver failure together with the name of the operation
// that triggered it.
type StorageError struct {
	Op         string
	Err        error
	Constraint bool
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrConstraintViolation) match classified constraint
// failures.
func (e *StorageError) Is(target error) bool {
	return e.Constraint && target == ErrConstraintViolation
}
