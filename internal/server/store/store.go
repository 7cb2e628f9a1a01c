// Package store содержит общий кеш записей, которые сервер синхронизации
// отдает компаньону. Владеющее приложение целиком заменяет содержимое
// при каждом локальном изменении; инкрементального API нет.
package store

import (
	"sync"

	"github.com/iudanet/lansync/internal/models"
)

// Snapshot независимая копия содержимого хранилища на момент вызова Snapshot
type Snapshot struct {
	Conversations []models.Record
	Projects      []models.Record
}

// Store потокобезопасный кеш бесед и проектов.
// Блокировка держится только на время копирования слайсов и никогда
// во время сетевого I/O или сериализации.
type Store struct {
	conversations []models.Record
	projects      []models.Record
	mu            sync.RWMutex
}

// New создает пустое хранилище
func New() *Store {
	return &Store{}
}

// Replace атомарно заменяет обе коллекции.
// Слайсы копируются, поэтому дальнейшие изменения у вызывающего не видны.
func (s *Store) Replace(conversations, projects []models.Record) {
	convs := cloneRecords(conversations)
	projs := cloneRecords(projects)

	s.mu.Lock()
	s.conversations = convs
	s.projects = projs
	s.mu.Unlock()
}

// Snapshot возвращает содержимое хранилища.
// Replace никогда не изменяет уже опубликованные слайсы, поэтому
// достаточно скопировать заголовки слайсов под read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Conversations: s.conversations[:len(s.conversations):len(s.conversations)],
		Projects:      s.projects[:len(s.projects):len(s.projects)],
	}
}

// Counts возвращает количество бесед и проектов
func (s *Store) Counts() (conversations, projects int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.conversations), len(s.projects)
}

func cloneRecords(records []models.Record) []models.Record {
	cloned := make([]models.Record, 0, len(records))
	for _, record := range records {
		cloned = append(cloned, record.Clone())
	}
	return cloned
}
