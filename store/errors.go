package store

import (
	"errors"
	"fmt"
)

// Domain-level failures. Callers branch on these with errors.Is; the HTTP
// layer translates them to status codes.
var (
	// ErrNotFound reports an operation that requires the entity or key to
	// exist when it never has been written.
	ErrNotFound = errors.New("not found")

	// ErrConflict reports a create on an id that already exists, or a
	// mutate whose optimistic retries were exhausted.
	ErrConflict = errors.New("conflict")

	// ErrValidation reports a caller-supplied value that is unusable, such
	// as a record whose id does not match its addressing id.
	ErrValidation = errors.New("validation failed")
)

// StorageError wraps a failure of the backing key-value capability itself:
// an I/O fault or a serialization fault. It is never swallowed by the
// store; it propagates to the caller unchanged.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op, key string, err error) error {
	return &StorageError{Op: op, Key: key, Err: err}
}
