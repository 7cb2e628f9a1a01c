// Package app связывает сервер синхронизации с библиотекой записей владеющего приложения:
// публикует локальные данные в общее хранилище и сливает то, что прислали компаньоны.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/lansync/internal/crdt"
	"github.com/iudanet/lansync/internal/models"
	"github.com/iudanet/lansync/internal/server"
	"github.com/iudanet/lansync/internal/server/events"
	"github.com/iudanet/lansync/internal/server/storage"
	"github.com/iudanet/lansync/internal/server/store"
	"github.com/iudanet/lansync/internal/validation"
	"github.com/iudanet/lansync/pkg/api"
)

// mergeTimeout ограничение на слияние одного push
const mergeTimeout = 30 * time.Second

// ServerController управляет сервером синхронизации
//
//go:generate moq -out mocks_test.go . ServerController Advertiser
type ServerController interface {
	Start(ctx context.Context, cfg server.Config) error
	Stop()
	IsRunning() bool
	Port() int
}

// Advertiser объявляет сервер в локальной сети
type Advertiser interface {
	Start(serverName string, port int, hasPin bool) error
	Stop()
}

// MergeResult итог слияния одного push
type MergeResult struct {
	Conversations int // изменено или добавлено бесед
	Projects      int // изменено или добавлено проектов
	Skipped       int // записей без id или с некорректным updatedAt
}

// Host владеющее приложение: библиотека записей плюс сервер синхронизации
type Host struct {
	logger       *slog.Logger
	library      storage.LibraryStorage
	store        *store.Store
	bus          *events.Bus
	server       ServerController
	advertiser   Advertiser
	now          func() time.Time
	unsubscribe  func()
	lastSyncedAt string
	mu           sync.Mutex
	mergeMu      sync.Mutex
}

// NewHost создает host. advertiser может быть nil.
func NewHost(
	logger *slog.Logger,
	library storage.LibraryStorage,
	st *store.Store,
	bus *events.Bus,
	srv ServerController,
	advertiser Advertiser,
) *Host {
	return &Host{
		logger:     logger,
		library:    library,
		store:      st,
		bus:        bus,
		server:     srv,
		advertiser: advertiser,
		now:        time.Now,
	}
}

// Start публикует библиотеку в общее хранилище, подписывается на push и запускает сервер.
// Пустое имя сервера заменяется на server.DefaultServerName.
// Ошибка привязки порта возвращается как *server.BindError; приложение может работать дальше.
func (h *Host) Start(ctx context.Context, cfg server.Config) error {
	if err := h.Publish(ctx); err != nil {
		return err
	}

	// /status и mDNS должны показывать одно и то же имя
	if cfg.ServerName == "" {
		cfg.ServerName = server.DefaultServerName
	}

	// Подписка до запуска сервера: первый же push не должен потеряться
	h.mu.Lock()
	subscribed := h.unsubscribe == nil
	if subscribed {
		h.unsubscribe = h.bus.Subscribe(h.handlePush)
	}
	h.mu.Unlock()

	if err := h.server.Start(ctx, cfg); err != nil {
		if subscribed {
			h.mu.Lock()
			unsubscribe := h.unsubscribe
			h.unsubscribe = nil
			h.mu.Unlock()
			unsubscribe()
		}
		return err
	}

	if h.advertiser != nil {
		hasPin := cfg.Pin != nil && *cfg.Pin != ""
		if err := h.advertiser.Start(cfg.ServerName, h.server.Port(), hasPin); err != nil {
			// Без mDNS компаньон все еще может подключиться по IP
			h.logger.Warn("Failed to advertise sync server", "error", err)
		}
	}

	return nil
}

// Stop останавливает объявление, сервер и отписывается от push.
// Уже поставленные в очередь push события дослушиваются до конца.
func (h *Host) Stop() {
	if h.advertiser != nil {
		h.advertiser.Stop()
	}

	h.server.Stop()

	h.mu.Lock()
	unsubscribe := h.unsubscribe
	h.unsubscribe = nil
	h.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// IsRunning сообщает, работает ли сервер
func (h *Host) IsRunning() bool {
	return h.server.IsRunning()
}

// Port возвращает порт запущенного сервера или 0
func (h *Host) Port() int {
	if !h.server.IsRunning() {
		return 0
	}
	return h.server.Port()
}

// Publish перечитывает библиотеку и целиком заменяет содержимое общего хранилища.
// Вызывается при каждом локальном изменении данных.
func (h *Host) Publish(ctx context.Context) error {
	conversations, err := h.library.ListRecords(ctx, storage.KindConversation)
	if err != nil {
		return fmt.Errorf("failed to list conversations: %w", err)
	}
	projects, err := h.library.ListRecords(ctx, storage.KindProject)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	h.store.Replace(conversations, projects)

	h.logger.Debug("Library published to sync store",
		"conversations", len(conversations),
		"projects", len(projects),
	)
	return nil
}

// SaveLocal сохраняет локально измененную запись и публикует библиотеку
func (h *Host) SaveLocal(ctx context.Context, kind string, record models.Record) error {
	if err := validation.ValidateTimestamp(record.UpdatedAt()); err != nil {
		return fmt.Errorf("record %q: %w", record.ID(), err)
	}

	h.mergeMu.Lock()
	defer h.mergeMu.Unlock()

	if err := h.library.SaveRecord(ctx, kind, record); err != nil {
		return err
	}
	return h.Publish(ctx)
}

// DeleteLocal удаляет запись из библиотеки и публикует изменения.
// Компаньоны, у которых запись уже есть, сохранят свою копию.
func (h *Host) DeleteLocal(ctx context.Context, kind, id string) error {
	h.mergeMu.Lock()
	defer h.mergeMu.Unlock()

	if err := h.library.DeleteRecord(ctx, kind, id); err != nil {
		return err
	}
	return h.Publish(ctx)
}

// MergePush сливает присланные записи с библиотекой, сохраняет изменившиеся
// и публикует результат в общее хранилище
func (h *Host) MergePush(ctx context.Context, req api.PushRequest) (MergeResult, error) {
	h.mergeMu.Lock()
	defer h.mergeMu.Unlock()

	result, err := h.mergeLocked(ctx, req)
	if err != nil {
		return result, err
	}

	syncedAt := validation.FormatTimestamp(h.now())
	if err := h.library.SetMeta(ctx, storage.MetaLastSyncedAt, syncedAt); err != nil {
		return result, fmt.Errorf("failed to save last sync time: %w", err)
	}

	h.mu.Lock()
	h.lastSyncedAt = syncedAt
	h.mu.Unlock()

	if err := h.Publish(ctx); err != nil {
		return result, err
	}

	return result, nil
}

// Import сливает с библиотекой экспорт в формате {"conversations":[...],"projects":[...]}.
// Правила те же, что и для push, но время синхронизации не меняется.
func (h *Host) Import(ctx context.Context, r io.Reader) (MergeResult, error) {
	var req api.PushRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return MergeResult{}, fmt.Errorf("failed to decode import: %w", err)
	}

	h.mergeMu.Lock()
	defer h.mergeMu.Unlock()

	result, err := h.mergeLocked(ctx, req)
	if err != nil {
		return result, err
	}

	if err := h.Publish(ctx); err != nil {
		return result, err
	}

	return result, nil
}

// mergeLocked вызывается под mergeMu
func (h *Host) mergeLocked(ctx context.Context, req api.PushRequest) (MergeResult, error) {
	var result MergeResult

	conversations, skipped, err := h.mergeKind(ctx, storage.KindConversation, crdt.NewConversationSet, req.Conversations)
	result.Skipped += skipped
	if err != nil {
		return result, err
	}
	result.Conversations = conversations

	projects, skipped, err := h.mergeKind(ctx, storage.KindProject, crdt.NewProjectSet, req.Projects)
	result.Skipped += skipped
	if err != nil {
		return result, err
	}
	result.Projects = projects

	return result, nil
}

func (h *Host) mergeKind(
	ctx context.Context,
	kind string,
	newSet func([]models.Record) *crdt.LWWSet,
	incoming []json.RawMessage,
) (changed, skipped int, err error) {
	if len(incoming) == 0 {
		return 0, 0, nil
	}

	local, err := h.library.ListRecords(ctx, kind)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list %s records: %w", kind, err)
	}
	set := newSet(local)

	for _, raw := range incoming {
		merged, ok, err := set.Add(models.Record(raw))
		if errors.Is(err, crdt.ErrInvalidRecord) {
			h.logger.Warn("Skipping pushed record", "type", kind, "error", err)
			skipped++
			continue
		}
		if err != nil {
			return changed, skipped, err
		}
		if !ok {
			continue
		}

		if err := h.library.SaveRecord(ctx, kind, merged); err != nil {
			return changed, skipped, fmt.Errorf("failed to save merged %s: %w", kind, err)
		}
		changed++
	}

	return changed, skipped, nil
}

// LastSyncedAt возвращает время последнего слияния push или "" если его не было
func (h *Host) LastSyncedAt(ctx context.Context) string {
	h.mu.Lock()
	cached := h.lastSyncedAt
	h.mu.Unlock()

	if cached != "" {
		return cached
	}

	value, err := h.library.GetMeta(ctx, storage.MetaLastSyncedAt)
	if err != nil {
		if !errors.Is(err, storage.ErrMetaNotFound) {
			h.logger.Warn("Failed to read last sync time", "error", err)
		}
		return ""
	}
	return value
}

// handlePush обрабатывает событие шины в горутине подписчика
func (h *Host) handlePush(ev events.PushEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), mergeTimeout)
	defer cancel()

	result, err := h.MergePush(ctx, ev.Request)
	if err != nil {
		h.logger.Error("Failed to merge pushed records",
			"remote_addr", ev.RemoteAddr,
			"error", err,
		)
		return
	}

	h.logger.Info("Pushed records merged",
		"remote_addr", ev.RemoteAddr,
		"conversations", result.Conversations,
		"projects", result.Projects,
		"skipped", result.Skipped,
	)
}
