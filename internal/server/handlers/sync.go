package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/lansync/internal/models"
	"github.com/iudanet/lansync/internal/reconcile"
	"github.com/iudanet/lansync/internal/server/events"
	"github.com/iudanet/lansync/internal/server/store"
	"github.com/iudanet/lansync/internal/validation"
	"github.com/iudanet/lansync/pkg/api"
)

// SnapshotSource отдает согласованный снимок общего хранилища
type SnapshotSource interface {
	Snapshot() store.Snapshot
}

// PushPublisher передает полученные записи владеющему приложению
type PushPublisher interface {
	Emit(ev events.PushEvent) int
}

// SyncHandler обрабатывает manifest, pull и push
type SyncHandler struct {
	logger    *slog.Logger
	source    SnapshotSource
	publisher PushPublisher
	now       func() time.Time
}

// NewSyncHandler создает handler синхронизации
func NewSyncHandler(logger *slog.Logger, source SnapshotSource, publisher PushPublisher) *SyncHandler {
	return &SyncHandler{
		logger:    logger,
		source:    source,
		publisher: publisher,
		now:       time.Now,
	}
}

// Manifest обрабатывает GET /api/sync/manifest
func (h *SyncHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	// Один снимок на запрос: манифест согласован даже при параллельном Replace
	snap := h.source.Snapshot()
	manifest := reconcile.BuildManifest(snap)

	h.logger.Debug("Manifest served", "entries", len(manifest))
	writeJSON(w, h.logger, manifest)
}

// Pull обрабатывает POST /api/sync/pull
func (h *SyncHandler) Pull(w http.ResponseWriter, r *http.Request) {
	var req api.PullRequest
	if err := decodePullRequest(w, r, &req); err != nil {
		h.logger.Warn("Failed to decode pull request", "error", err)
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	snap := h.source.Snapshot()
	resp := reconcile.Pull(snap, req.KnownItems)

	h.logger.Info("Pull completed",
		"known_items", len(req.KnownItems),
		"conversations", len(resp.Conversations),
		"projects", len(resp.Projects),
	)
	writeJSON(w, h.logger, resp)
}

// Push обрабатывает POST /api/sync/push.
// Хранилище не изменяется: payload публикуется владеющему приложению,
// клиент получает подтверждение приема.
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	var req api.PushRequest
	if err := decodePushRequest(w, r, &req); err != nil {
		h.logger.Warn("Failed to decode push request", "error", err)
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	h.logInvalidTimestamps(api.TypeConversation, req.Conversations)
	h.logInvalidTimestamps(api.TypeProject, req.Projects)

	delivered := h.publisher.Emit(events.PushEvent{
		ReceivedAt: h.now().UTC(),
		RemoteAddr: r.RemoteAddr,
		Request:    req,
	})

	resp := reconcile.Acknowledge(req)

	h.logger.Info("Push received",
		"conversations", resp.MergedConversations,
		"projects", resp.MergedProjects,
		"subscribers", delivered,
	)
	writeJSON(w, h.logger, resp)
}

// logInvalidTimestamps предупреждает о записях, которые владеющее приложение пропустит при слиянии
func (h *SyncHandler) logInvalidTimestamps(recordType string, raw []json.RawMessage) {
	for _, item := range raw {
		meta := models.Record(item).Meta()
		if err := validation.ValidateTimestamp(meta.UpdatedAt); err != nil {
			h.logger.Warn("Pushed record has invalid updatedAt",
				"type", recordType,
				"id", meta.ID,
				"error", err,
			)
		}
	}
}

// decodePullRequest требует поле knownItems; null и {} запросом не считаются
func decodePullRequest(w http.ResponseWriter, r *http.Request, req *api.PullRequest) error {
	if err := decodeJSON(w, r, req); err != nil {
		return err
	}
	if req.KnownItems == nil {
		return fmt.Errorf("%w: knownItems is required", ErrMalformedRequest)
	}
	return nil
}

// decodePushRequest требует оба массива: conversations и projects
func decodePushRequest(w http.ResponseWriter, r *http.Request, req *api.PushRequest) error {
	if err := decodeJSON(w, r, req); err != nil {
		return err
	}
	if req.Conversations == nil || req.Projects == nil {
		return fmt.Errorf("%w: conversations and projects are required", ErrMalformedRequest)
	}
	return nil
}
