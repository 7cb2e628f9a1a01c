package storage

import "context"

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncedAt saves the timestamp of the last successful sync
	SaveLastSyncedAt(ctx context.Context, timestamp string) error

	// GetLastSyncedAt retrieves the timestamp of the last successful sync
	// Returns "" if no sync has been performed yet
	GetLastSyncedAt(ctx context.Context) (string, error)

	// NodeID returns the stable identifier of this client, generated on first use
	NodeID(ctx context.Context) (string, error)
}
