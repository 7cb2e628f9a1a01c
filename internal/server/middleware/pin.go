package middleware

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/iudanet/lansync/pkg/api"
)

// PinGate хранит PIN сервера синхронизации и проверяет заголовок X-Sync-Pin.
//
// Это барьер для сопряжения устройств, а не криптографическая защита:
// PIN передается открытым текстом по HTTP и сравнивается обычным равенством
// строк. Не использовать в недоверенных сетях.
type PinGate struct {
	pin *string
	mu  sync.RWMutex
}

// NewPinGate создает gate без PIN (все запросы проходят)
func NewPinGate() *PinGate {
	return &PinGate{}
}

// Configure устанавливает или сбрасывает PIN. nil или пустая строка сбрасывают PIN.
// Предыдущее значение заменяется, а не объединяется.
func (g *PinGate) Configure(pin *string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if pin == nil || *pin == "" {
		g.pin = nil
		return
	}
	value := *pin
	g.pin = &value
}

// HasPin сообщает, настроен ли PIN
func (g *PinGate) HasPin() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pin != nil
}

// Check возвращает true, если PIN не настроен или значение заголовка точно равно PIN
func (g *PinGate) Check(headerValue string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.pin == nil {
		return true
	}
	return headerValue == *g.pin
}

// PinAuthMiddleware создает middleware, пропускающий только запросы с верным PIN.
// Отказ - ожидаемая ситуация при сопряжении, поэтому логируется на уровне Debug.
func PinAuthMiddleware(logger *slog.Logger, gate *PinGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Check(r.Header.Get(api.PinHeader)) {
				logger.Debug("Sync PIN rejected",
					"method", r.Method,
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"header_present", r.Header.Get(api.PinHeader) != "",
				)

				writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid sync PIN")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
