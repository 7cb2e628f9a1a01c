package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/lansync/internal/models"
	"github.com/iudanet/lansync/internal/server/storage"
)

// SaveRecord creates or replaces a record of the given kind.
// Existing record keeps its seq, so listing order is stable across updates.
func (s *Storage) SaveRecord(ctx context.Context, kind string, record models.Record) error {
	if !storage.ValidKind(kind) {
		return fmt.Errorf("%w: %q", storage.ErrInvalidKind, kind)
	}

	meta := record.Meta()
	if meta.ID == "" {
		return fmt.Errorf("record has no id")
	}

	query := `
		INSERT INTO records (kind, id, updated_at, data)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (kind, id) DO UPDATE SET
			updated_at = excluded.updated_at,
			data = excluded.data
	`

	if _, err := s.db.ExecContext(ctx, query, kind, meta.ID, meta.UpdatedAt, []byte(record)); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// GetRecord retrieves a record by kind and ID
func (s *Storage) GetRecord(ctx context.Context, kind, id string) (models.Record, error) {
	query := `SELECT data FROM records WHERE kind = ? AND id = ?`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, kind, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return models.Record(data), nil
}

// ListRecords retrieves all records of the given kind in insertion order
func (s *Storage) ListRecords(ctx context.Context, kind string) (records []models.Record, err error) {
	if !storage.ValidKind(kind) {
		return nil, fmt.Errorf("%w: %q", storage.ErrInvalidKind, kind)
	}

	query := `SELECT data FROM records WHERE kind = ? ORDER BY seq`

	rows, err := s.db.QueryContext(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	records = make([]models.Record, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, models.Record(data))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}

	return records, nil
}

// DeleteRecord removes a record
func (s *Storage) DeleteRecord(ctx context.Context, kind, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE kind = ? AND id = ?`, kind, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrRecordNotFound
	}

	return nil
}

// SetMeta stores a metadata value
func (s *Storage) SetMeta(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO sync_meta (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set meta %q: %w", key, err)
	}
	return nil
}

// GetMeta retrieves a metadata value
func (s *Storage) GetMeta(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM sync_meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", storage.ErrMetaNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get meta %q: %w", key, err)
	}
	return value, nil
}

var _ storage.LibraryStorage = (*Storage)(nil)
