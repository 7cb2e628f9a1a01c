// Package server управляет жизненным циклом HTTP сервера синхронизации.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/lansync/internal/server/events"
	"github.com/iudanet/lansync/internal/server/handlers"
	"github.com/iudanet/lansync/internal/server/middleware"
	"github.com/iudanet/lansync/internal/server/store"
)

// DefaultPort порт сервера синхронизации по умолчанию
const DefaultPort = 19847

// DefaultServerName имя сервера, если не задано в конфигурации
const DefaultServerName = "lansync"

// rateLimiterIdleTTL время, после которого неактивный клиент забывается лимитером
const rateLimiterIdleTTL = 10 * time.Minute

// Config параметры одного запуска сервера
type Config struct {
	Pin        *string // nil или "" - без PIN
	ServerName string
	Port       int     // 0 - любой свободный порт
	RateLimit  float64 // запросов в секунду на IP для защищенных эндпоинтов, 0 - без ограничения
	RateBurst  int
}

// instance запущенный экземпляр сервера
type instance struct {
	srv     *http.Server
	limiter *middleware.RateLimiter
	done    chan struct{}
	addr    string
}

// Manager запускает и останавливает сервер синхронизации.
// Одновременно работает не более одного экземпляра; Start заменяет текущий.
type Manager struct {
	logger  *slog.Logger
	store   *store.Store
	bus     *events.Bus
	gate    *middleware.PinGate
	running *instance
	mu      sync.Mutex
}

// NewManager создает менеджер поверх общего хранилища и шины push событий
func NewManager(logger *slog.Logger, st *store.Store, bus *events.Bus) *Manager {
	return &Manager{
		logger: logger,
		store:  st,
		bus:    bus,
		gate:   middleware.NewPinGate(),
	}
}

// Start останавливает работающий экземпляр (если есть) и запускает новый.
// Порт занимается синхронно, поэтому ошибка привязки возвращается сразу как *BindError.
// PIN и имя сервера заменяются значениями из cfg.
func (m *Manager) Start(ctx context.Context, cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()

	if cfg.Port < 0 || cfg.Port > 65535 {
		return &BindError{Port: cfg.Port, Err: fmt.Errorf("port out of range")}
	}

	// Слушаем на всех интерфейсах: компаньоны подключаются из локальной сети
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return &BindError{Port: cfg.Port, Err: err}
	}

	m.gate.Configure(cfg.Pin)

	serverName := cfg.ServerName
	if serverName == "" {
		serverName = DefaultServerName
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, rateLimiterIdleTTL, m.logger)
	}

	router := NewRouter(m.logger, Routes{
		Status:  handlers.NewStatusHandler(m.logger, m.store, m.gate, serverName),
		Sync:    handlers.NewSyncHandler(m.logger, m.store, m.bus),
		Gate:    m.gate,
		Limiter: limiter,
	})

	inst := &instance{
		srv: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		limiter: limiter,
		done:    make(chan struct{}),
		addr:    ln.Addr().String(),
	}

	go func() {
		defer close(inst.done)
		if err := inst.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.Error("Sync server stopped with error", "addr", inst.addr, "error", err)
		}
	}()

	m.running = inst

	m.logger.Info("Sync server started",
		"addr", inst.addr,
		"server_name", serverName,
		"pin_required", m.gate.HasPin(),
	)
	return nil
}

// Stop немедленно закрывает сервер и дожидается завершения обслуживающей горутины.
// Активные запросы обрываются. Если сервер не запущен, ничего не делает.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()
}

func (m *Manager) stopLocked() {
	inst := m.running
	if inst == nil {
		return
	}
	m.running = nil

	if err := inst.srv.Close(); err != nil {
		m.logger.Warn("Error closing sync server", "addr", inst.addr, "error", err)
	}
	<-inst.done

	if inst.limiter != nil {
		inst.limiter.Stop()
	}

	m.logger.Info("Sync server stopped", "addr", inst.addr)
}

// IsRunning сообщает, что экземпляр запущен и его горутина еще обслуживает запросы
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running == nil {
		return false
	}
	select {
	case <-m.running.done:
		return false
	default:
		return true
	}
}

// Addr возвращает адрес, на котором слушает сервер, или "" если он не запущен
func (m *Manager) Addr() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running == nil {
		return ""
	}
	return m.running.addr
}

// Port возвращает занятый порт или 0 если сервер не запущен
func (m *Manager) Port() int {
	addr := m.Addr()
	if addr == "" {
		return 0
	}
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return 0
	}
	return tcpAddr.Port
}
