// Package sync синхронизирует локальную библиотеку компаньона с сервером:
// отправляет то, чего на сервере нет или что там устарело, и забирает остальное.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/lansync/internal/client/storage"
	"github.com/iudanet/lansync/internal/crdt"
	"github.com/iudanet/lansync/internal/models"
	"github.com/iudanet/lansync/internal/validation"
	"github.com/iudanet/lansync/pkg/api"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out mocks_test.go . APIClient

// Service определяет интерфейс для sync.Service
type Service interface {
	// Sync выполняет полную синхронизацию с сервером
	Sync(ctx context.Context) (*SyncResult, error)
}

// APIClient операции сервера синхронизации, нужные сервису
type APIClient interface {
	Manifest(ctx context.Context) ([]api.ManifestEntry, error)
	Pull(ctx context.Context, known []api.KnownItem) (*api.PullResponse, error)
	Push(ctx context.Context, req api.PushRequest) (*api.PushResponse, error)
}

// service handles synchronization between client and server
type service struct {
	apiClient       APIClient
	recordStorage   storage.RecordStorage
	metadataStorage storage.MetadataStorage
	logger          *slog.Logger
	now             func() time.Time
}

// NewService creates a new sync service
func NewService(
	apiClient APIClient,
	recordStorage storage.RecordStorage,
	metadataStorage storage.MetadataStorage,
	logger *slog.Logger,
) Service {
	return &service{
		apiClient:       apiClient,
		recordStorage:   recordStorage,
		metadataStorage: metadataStorage,
		logger:          logger,
		now:             time.Now,
	}
}

// SyncResult contains sync operation results
type SyncResult struct {
	LastSyncedAt        string // время завершения синхронизации
	PushedConversations int    // отправлено на сервер бесед
	PushedProjects      int    // отправлено на сервер проектов
	PulledConversations int    // получено с сервера бесед
	PulledProjects      int    // получено с сервера проектов
	MergedEntries       int    // изменено локальных записей
	SkippedEntries      int    // пропущено записей без id или с некорректным updatedAt
}

// Pushed возвращает общее количество отправленных записей
func (r *SyncResult) Pushed() int {
	return r.PushedConversations + r.PushedProjects
}

// Pulled возвращает общее количество полученных записей
func (r *SyncResult) Pulled() int {
	return r.PulledConversations + r.PulledProjects
}

// Sync performs full synchronization with server
// 1. Fetches manifest and pushes local records the server lacks or has older
// 2. Pulls server records unknown or stale locally
// 3. Merges pulled records into local storage using LWW rules
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	s.logger.Info("Starting synchronization")

	local := make(map[string][]models.Record, len(storage.Kinds))
	for _, kind := range storage.Kinds {
		records, err := s.recordStorage.ListRecords(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to list local %s records: %w", kind, err)
		}
		local[kind] = records
	}

	manifest, err := s.apiClient.Manifest(ctx)
	if err != nil {
		return nil, fmt.Errorf("manifest request failed: %w", err)
	}
	s.logger.Info("Received server manifest", "entries", len(manifest))

	result := &SyncResult{}

	// Шаг 1: push
	pushReq := api.PushRequest{
		Conversations: outdatedOnServer(local[storage.KindConversation], storage.KindConversation, manifest),
		Projects:      outdatedOnServer(local[storage.KindProject], storage.KindProject, manifest),
	}
	result.PushedConversations = len(pushReq.Conversations)
	result.PushedProjects = len(pushReq.Projects)

	if result.Pushed() > 0 {
		if _, err := s.apiClient.Push(ctx, pushReq); err != nil {
			return nil, fmt.Errorf("push request failed: %w", err)
		}
		s.logger.Info("Pushed local changes",
			"conversations", result.PushedConversations,
			"projects", result.PushedProjects)
	}

	// Шаг 2: pull с учетом того, что уже есть локально
	known := make([]api.KnownItem, 0, len(local[storage.KindConversation])+len(local[storage.KindProject]))
	for _, kind := range storage.Kinds {
		for _, record := range local[kind] {
			meta := record.Meta()
			known = append(known, api.KnownItem{ID: meta.ID, UpdatedAt: meta.UpdatedAt})
		}
	}

	pullResp, err := s.apiClient.Pull(ctx, known)
	if err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}
	result.PulledConversations = len(pullResp.Conversations)
	result.PulledProjects = len(pullResp.Projects)

	// Шаг 3: merge
	if err := s.mergeKind(ctx, storage.KindConversation, crdt.NewConversationSet(local[storage.KindConversation]), pullResp.Conversations, result); err != nil {
		return nil, err
	}
	if err := s.mergeKind(ctx, storage.KindProject, crdt.NewProjectSet(local[storage.KindProject]), pullResp.Projects, result); err != nil {
		return nil, err
	}

	result.LastSyncedAt = validation.FormatTimestamp(s.now())
	if err := s.metadataStorage.SaveLastSyncedAt(ctx, result.LastSyncedAt); err != nil {
		// Не прерываем синхронизацию из-за ошибки сохранения метки
		s.logger.Warn("Failed to save last synced at", "error", err)
	}

	s.logger.Info("Synchronization completed",
		"pushed", result.Pushed(),
		"pulled", result.Pulled(),
		"merged", result.MergedEntries,
		"skipped", result.SkippedEntries)

	return result, nil
}

// mergeKind сливает полученные записи одного типа с локальными и сохраняет изменившиеся
func (s *service) mergeKind(
	ctx context.Context,
	kind string,
	set *crdt.LWWSet,
	incoming []json.RawMessage,
	result *SyncResult,
) error {
	for _, raw := range incoming {
		merged, changed, err := set.Add(models.Record(raw))
		if err != nil {
			s.logger.Warn("Skipping pulled record", "kind", kind, "error", err)
			result.SkippedEntries++
			continue
		}
		if !changed {
			continue
		}

		if err := s.recordStorage.SaveRecord(ctx, kind, merged); err != nil {
			return fmt.Errorf("failed to save %s %q: %w", kind, merged.ID(), err)
		}
		result.MergedEntries++
	}
	return nil
}

// outdatedOnServer отбирает локальные записи, которых нет в манифесте
// или которые строго новее версии на сервере
func outdatedOnServer(records []models.Record, kind string, manifest []api.ManifestEntry) []json.RawMessage {
	server := make(map[string]string, len(manifest))
	for _, entry := range manifest {
		if entry.Type == kind {
			server[entry.ID] = entry.UpdatedAt
		}
	}

	outdated := []json.RawMessage{}
	for _, record := range records {
		meta := record.Meta()
		if meta.ID == "" {
			continue
		}
		serverUpdatedAt, exists := server[meta.ID]
		if !exists || meta.UpdatedAt > serverUpdatedAt {
			outdated = append(outdated, json.RawMessage(record))
		}
	}
	return outdated
}
