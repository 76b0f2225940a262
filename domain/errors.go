package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrDuplicateFingerprint is reported by the metadata store when an insert
// loses the unique-index race for a fingerprint that is already registered.
var ErrDuplicateFingerprint = errors.New("fingerprint already registered")

// ValidationError is a caller-correctable problem with the request itself.
// Nothing has been attempted against a provider or a store when it is raised.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnsupportedPlatformError means the voice profile references a platform with
// no registered provider. Fatal for the request.
type UnsupportedPlatformError struct {
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Platform)
}

// ProviderError is a transport failure or a non-success response from a
// synthesis backend. Message carries the backend's raw error text when
// available. Never retried.
type ProviderError struct {
	Platform   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider %s returned status %d: %s", e.Platform, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider %s request failed: %s", e.Platform, e.Message)
}

// ProviderTimeoutError means a provider call exceeded its configured deadline.
type ProviderTimeoutError struct {
	Platform string
	Timeout  time.Duration
}

func (e *ProviderTimeoutError) Error() string {
	return fmt.Sprintf("provider %s timed out after %s", e.Platform, e.Timeout)
}

// StorageError wraps a local scratch write or blob upload failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// PersistenceError wraps a metadata write failure that happened after a
// successful upload. The uploaded blob is orphaned; it is logged, never
// auto-reconciled.
type PersistenceError struct {
	Fingerprint string
	Err         error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting artifact %s: %v", e.Fingerprint, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
