// Package store holds the error type shared by the secret storage backends.
// The concrete backends live in subpackages (memory, redis) and implement the
// app.SecretStore port; callers outside this tree interact only with that port.
package store

import "fmt"

// BackendError wraps any storage-layer failure (connection, serialization)
// with a human-readable cause. Absence of a secret is never a BackendError;
// it is a normal return value of the port.
type BackendError struct {
	Op  string // the failing operation, e.g. "redis set"
	Err error
}

func (e *BackendError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *BackendError) Unwrap() error { return e.Err }

// NewBackendError wraps err with the failing operation name.
func NewBackendError(op string, err error) error {
	return &BackendError{Op: op, Err: err}
}
