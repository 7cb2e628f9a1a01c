package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/lansync/pkg/api"
)

// RecordCounter сообщает количество записей в общем хранилище
type RecordCounter interface {
	Counts() (conversations, projects int)
}

// PinReporter сообщает, настроен ли PIN
type PinReporter interface {
	HasPin() bool
}

// StatusHandler обрабатывает GET /api/sync/status.
// Эндпоинт открыт без PIN: компаньон по нему узнает, нужен ли PIN вообще.
type StatusHandler struct {
	logger     *slog.Logger
	counter    RecordCounter
	pin        PinReporter
	serverName string
}

// NewStatusHandler создает handler статуса
func NewStatusHandler(logger *slog.Logger, counter RecordCounter, pin PinReporter, serverName string) *StatusHandler {
	return &StatusHandler{
		logger:     logger,
		counter:    counter,
		pin:        pin,
		serverName: serverName,
	}
}

// Status возвращает имя сервера, версию протокола, счетчики и признак наличия PIN
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	conversations, projects := h.counter.Counts()

	writeJSON(w, h.logger, api.StatusResponse{
		ServerName:        h.serverName,
		Version:           api.ProtocolVersion,
		ConversationCount: conversations,
		ProjectCount:      projects,
		HasPin:            h.pin.HasPin(),
	})
}
