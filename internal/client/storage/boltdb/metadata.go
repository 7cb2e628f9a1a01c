package boltdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/lansync/internal/client/storage"
)

const (
	keyLastSyncedAt = "last_synced_at"
	keyNodeID       = "node_id"
)

// SaveLastSyncedAt saves the timestamp of the last successful sync
func (s *Storage) SaveLastSyncedAt(ctx context.Context, timestamp string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyLastSyncedAt), []byte(timestamp)); err != nil {
			return fmt.Errorf("failed to save last synced at: %w", err)
		}

		return nil
	})
}

// GetLastSyncedAt retrieves the timestamp of the last successful sync
// Returns "" if no sync has been performed yet
func (s *Storage) GetLastSyncedAt(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var timestamp string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Если значения нет - синхронизации еще не было
		timestamp = string(bucket.Get([]byte(keyLastSyncedAt)))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get last synced at: %w", err)
	}

	return timestamp, nil
}

// NodeID returns the client identifier, generating it on first call
func (s *Storage) NodeID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var nodeID string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if existing := bucket.Get([]byte(keyNodeID)); existing != nil {
			nodeID = string(existing)
			return nil
		}

		nodeID = uuid.New().String()
		return bucket.Put([]byte(keyNodeID), []byte(nodeID))
	})
	if err != nil {
		return "", fmt.Errorf("failed to get node id: %w", err)
	}

	return nodeID, nil
}
