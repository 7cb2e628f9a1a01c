// Package events доставляет владеющему приложению данные, полученные
// сервером синхронизации через push. Сервер сам записи не сливает:
// он публикует payload и сразу отвечает клиенту.
package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/lansync/pkg/api"
)

// DefaultBufferSize размер очереди одного подписчика
const DefaultBufferSize = 16

// PushEvent уведомление "данные получены" с исходным payload push-запроса
type PushEvent struct {
	ReceivedAt time.Time
	RemoteAddr string
	Request    api.PushRequest
}

// Handler обрабатывает события в отдельной горутине подписчика
type Handler func(PushEvent)

type subscriber struct {
	logger  *slog.Logger
	events  chan PushEvent
	done    chan struct{}
	handler Handler
}

// Bus рассылает push события подписчикам.
// Emit не блокируется: если очередь подписчика заполнена, событие
// для него отбрасывается с предупреждением в лог.
type Bus struct {
	logger     *slog.Logger
	subs       map[uint64]*subscriber
	bufferSize int
	nextID     uint64
	mu         sync.RWMutex
	closed     bool
}

// NewBus создает шину событий. bufferSize <= 0 означает DefaultBufferSize.
func NewBus(logger *slog.Logger, bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Bus{
		logger:     logger,
		subs:       make(map[uint64]*subscriber),
		bufferSize: bufferSize,
	}
}

// Subscribe регистрирует обработчик и возвращает функцию отписки.
// Отписка идемпотентна и дожидается обработки уже поставленных в очередь событий.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	sub := &subscriber{
		logger:  b.logger,
		events:  make(chan PushEvent, b.bufferSize),
		done:    make(chan struct{}),
		handler: h,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.done)
		return func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	go sub.run()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub.events)
			}
			b.mu.Unlock()
			<-sub.done
		})
	}
}

// Emit ставит событие в очередь каждому подписчику.
// Возвращает количество подписчиков, которым событие было доставлено в очередь.
func (b *Bus) Emit(ev PushEvent) int {
	// RLock удерживается на время отправки, чтобы каналы не закрылись
	// параллельно в Subscribe/Close
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return 0
	}

	queued := 0
	for _, sub := range b.subs {
		select {
		case sub.events <- ev:
			queued++
		default:
			b.logger.Warn("Push event queue full, dropping event",
				"conversations", len(ev.Request.Conversations),
				"projects", len(ev.Request.Projects))
		}
	}

	if queued == 0 && len(b.subs) == 0 {
		b.logger.Warn("Push event has no subscribers",
			"conversations", len(ev.Request.Conversations),
			"projects", len(ev.Request.Projects))
	}

	return queued
}

// Close отписывает всех подписчиков и дожидается завершения их горутин.
// После Close Emit ничего не делает.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := b.subs
	b.subs = make(map[uint64]*subscriber)
	for _, sub := range subs {
		close(sub.events)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		<-sub.done
	}
}

func (s *subscriber) run() {
	defer close(s.done)
	for ev := range s.events {
		s.deliver(ev)
	}
}

// deliver вызывает обработчик; паника в обработчике не останавливает подписку
func (s *subscriber) deliver(ev PushEvent) {
	defer func() {
		if err := recover(); err != nil {
			s.logger.Error("Panic recovered in push event handler", "error", err)
		}
	}()
	s.handler(ev)
}
