package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that record was not found
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidKind indicates unknown record kind
	ErrInvalidKind = errors.New("invalid record kind")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
