package sqlite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lansync/internal/models"
	"github.com/iudanet/lansync/internal/server/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func record(id, updatedAt string) models.Record {
	return models.Record(fmt.Sprintf(`{"id":%q,"updatedAt":%q,"messages":[]}`, id, updatedAt))
}

func TestStorage_SaveAndGetRecord(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	original := record("c1", "2024-01-01T00:00:00.000Z")
	require.NoError(t, s.SaveRecord(ctx, storage.KindConversation, original))

	got, err := s.GetRecord(ctx, storage.KindConversation, "c1")
	require.NoError(t, err)
	assert.JSONEq(t, string(original), string(got))

	// Тот же id другого типа - другая запись
	_, err = s.GetRecord(ctx, storage.KindProject, "c1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}

func TestStorage_SaveRecord_Validation(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	tests := []struct {
		name   string
		kind   string
		record models.Record
	}{
		{name: "unknown kind", kind: "note", record: record("n1", "2024-01-01T00:00:00Z")},
		{name: "missing id", kind: storage.KindProject, record: models.Record(`{"updatedAt":"2024-01-01T00:00:00Z"}`)},
		{name: "not an object", kind: storage.KindProject, record: models.Record(`[]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, s.SaveRecord(ctx, tt.kind, tt.record))
		})
	}

	err := s.SaveRecord(ctx, "note", record("n1", "2024-01-01T00:00:00Z"))
	assert.ErrorIs(t, err, storage.ErrInvalidKind)
}

func TestStorage_SaveRecord_ReplaceKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.SaveRecord(ctx, storage.KindConversation, record("c1", "2024-01-01T00:00:00.000Z")))
	require.NoError(t, s.SaveRecord(ctx, storage.KindConversation, record("c2", "2024-01-02T00:00:00.000Z")))
	require.NoError(t, s.SaveRecord(ctx, storage.KindConversation, record("c3", "2024-01-03T00:00:00.000Z")))

	// Обновляем первую запись
	require.NoError(t, s.SaveRecord(ctx, storage.KindConversation, record("c1", "2024-05-01T00:00:00.000Z")))

	records, err := s.ListRecords(ctx, storage.KindConversation)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "c1", records[0].ID())
	assert.Equal(t, "2024-05-01T00:00:00.000Z", records[0].UpdatedAt())
	assert.Equal(t, "c2", records[1].ID())
	assert.Equal(t, "c3", records[2].ID())
}

func TestStorage_ListRecords(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	t.Run("empty library returns empty slice", func(t *testing.T) {
		records, err := s.ListRecords(ctx, storage.KindProject)
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("kinds are listed separately", func(t *testing.T) {
		require.NoError(t, s.SaveRecord(ctx, storage.KindConversation, record("c1", "2024-01-01T00:00:00Z")))
		require.NoError(t, s.SaveRecord(ctx, storage.KindProject, record("p1", "2024-01-01T00:00:00Z")))
		require.NoError(t, s.SaveRecord(ctx, storage.KindProject, record("p2", "2024-01-01T00:00:00Z")))

		conversations, err := s.ListRecords(ctx, storage.KindConversation)
		require.NoError(t, err)
		assert.Len(t, conversations, 1)

		projects, err := s.ListRecords(ctx, storage.KindProject)
		require.NoError(t, err)
		assert.Len(t, projects, 2)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := s.ListRecords(ctx, "note")
		assert.ErrorIs(t, err, storage.ErrInvalidKind)
	})
}

func TestStorage_DeleteRecord(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.SaveRecord(ctx, storage.KindProject, record("p1", "2024-01-01T00:00:00Z")))

	require.NoError(t, s.DeleteRecord(ctx, storage.KindProject, "p1"))
	_, err := s.GetRecord(ctx, storage.KindProject, "p1")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)

	assert.ErrorIs(t, s.DeleteRecord(ctx, storage.KindProject, "p1"), storage.ErrRecordNotFound)
}

func TestStorage_Meta(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.GetMeta(ctx, storage.MetaLastSyncedAt)
	assert.ErrorIs(t, err, storage.ErrMetaNotFound)

	require.NoError(t, s.SetMeta(ctx, storage.MetaLastSyncedAt, "2024-01-01T00:00:00.000Z"))
	require.NoError(t, s.SetMeta(ctx, storage.MetaLastSyncedAt, "2024-02-01T00:00:00.000Z"))

	value, err := s.GetMeta(ctx, storage.MetaLastSyncedAt)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01T00:00:00.000Z", value)
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "library.db")

	s, err := New(ctx, path, logger)
	require.NoError(t, err)
	require.NoError(t, s.SaveRecord(ctx, storage.KindConversation, record("c1", "2024-01-01T00:00:00Z")))
	require.NoError(t, s.Close())

	// Повторное открытие не применяет миграции заново и видит данные
	s, err = New(ctx, path, logger)
	require.NoError(t, err)
	defer s.Close()

	records, err := s.ListRecords(ctx, storage.KindConversation)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "c1", records[0].ID())
}
