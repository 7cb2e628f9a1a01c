package storage

import "errors"

// Common storage errors
var (
	// ErrRecordNotFound indicates that record was not found in the library
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidKind indicates that record kind is neither conversation nor project
	ErrInvalidKind = errors.New("invalid record kind")

	// ErrMetaNotFound indicates that metadata key is not set
	ErrMetaNotFound = errors.New("meta key not found")
)
