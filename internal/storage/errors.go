package storage

import "errors"

var (
	// ErrStorageUnavailable is returned when the database file cannot be
	// opened, created or initialised.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidHandle is returned by every operation on a closed store.
	ErrInvalidHandle = errors.New("invalid handle: store is closed")

	// ErrNotFound is returned by Get when no event has the requested id.
	ErrNotFound = errors.New("event not found")
)
