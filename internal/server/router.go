package server

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/lansync/internal/server/handlers"
	"github.com/iudanet/lansync/internal/server/middleware"
	"github.com/iudanet/lansync/pkg/api"
)

// Routes обработчики и middleware, из которых собирается HTTP API синхронизации
type Routes struct {
	Status  *handlers.StatusHandler
	Sync    *handlers.SyncHandler
	Gate    *middleware.PinGate
	Limiter *middleware.RateLimiter // nil - без ограничения частоты
}

// NewRouter собирает HTTP API:
//
//	GET  /api/sync/status    без PIN
//	GET  /api/sync/manifest  PIN, если задан
//	POST /api/sync/pull      PIN, если задан
//	POST /api/sync/push      PIN, если задан
//
// Неверный метод дает 405 средствами ServeMux.
func NewRouter(logger *slog.Logger, routes Routes) http.Handler {
	pinAuth := middleware.PinAuthMiddleware(logger, routes.Gate)

	protected := func(h http.HandlerFunc) http.Handler {
		var next http.Handler = pinAuth(h)
		// Лимит стоит перед проверкой PIN, чтобы неудачные попытки тоже расходовали токены
		if routes.Limiter != nil {
			next = routes.Limiter.Middleware(next)
		}
		return next
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+api.PathStatus, routes.Status.Status)
	mux.Handle("GET "+api.PathManifest, protected(routes.Sync.Manifest))
	mux.Handle("POST "+api.PathPull, protected(routes.Sync.Pull))
	mux.Handle("POST "+api.PathPush, protected(routes.Sync.Push))

	// Цепочка: request id -> recovery -> logging -> mux
	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{api.PathStatus})(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)
	handler = middleware.RequestIDMiddleware(handler)

	return handler
}
