package storage

import (
	"context"

	"github.com/iudanet/lansync/internal/models"
	"github.com/iudanet/lansync/pkg/api"
)

// Record kinds stored in the library
const (
	KindConversation = api.TypeConversation
	KindProject      = api.TypeProject
)

// Meta keys
const (
	MetaLastSyncedAt = "last_synced_at"
)

// LibraryStorage defines interface for the owning application's durable
// record library (conversations and projects)
type LibraryStorage interface {
	// SaveRecord creates or replaces a record of the given kind.
	// Merge rules are applied by the caller; storage only persists the result.
	// A replaced record keeps its original position in listings.
	SaveRecord(ctx context.Context, kind string, record models.Record) error

	// GetRecord retrieves a record by kind and ID
	// Returns ErrRecordNotFound if record doesn't exist
	GetRecord(ctx context.Context, kind, id string) (models.Record, error)

	// ListRecords retrieves all records of the given kind in insertion order
	// Returns empty slice if no records found
	ListRecords(ctx context.Context, kind string) ([]models.Record, error)

	// DeleteRecord removes a record
	// Returns ErrRecordNotFound if record doesn't exist
	DeleteRecord(ctx context.Context, kind, id string) error

	// SetMeta stores a metadata value
	SetMeta(ctx context.Context, key, value string) error

	// GetMeta retrieves a metadata value
	// Returns ErrMetaNotFound if key is not set
	GetMeta(ctx context.Context, key string) (string, error)
}

// ValidKind reports whether kind is a known record kind
func ValidKind(kind string) bool {
	return kind == KindConversation || kind == KindProject
}
