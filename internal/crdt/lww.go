// Package crdt реализует слияние реплик бесед и проектов по правилу
// Last-Write-Wins: из двух версий записи побеждает версия с большим updatedAt.
// Сообщения бесед при этом объединяются по id и никогда не теряются.
package crdt

import (
	"fmt"
	"sync"

	"github.com/iudanet/lansync/internal/models"
	"github.com/iudanet/lansync/internal/validation"
)

// MergeFunc сливает входящую версию записи с локальной.
// local == nil означает, что локальной версии нет.
// Возвращает итоговую запись и признак того, что она отличается от local.
type MergeFunc func(local, incoming models.Record) (models.Record, bool, error)

// MergeProject применяет LWW: входящая версия побеждает, только если она строго новее.
// При равных метках остается локальная версия.
func MergeProject(local, incoming models.Record) (models.Record, bool, error) {
	if local == nil || incoming.IsNewerThan(local) {
		return incoming.Clone(), true, nil
	}
	return local, false, nil
}

// MergeConversation применяет LWW к полям беседы и объединяет сообщения:
// сначала локальные сообщения в исходном порядке, затем входящие, чьих id нет локально.
// Если входящая версия не новее, локальная остается без изменений.
func MergeConversation(local, incoming models.Record) (models.Record, bool, error) {
	if local == nil {
		return incoming.Clone(), true, nil
	}
	if !incoming.IsNewerThan(local) {
		return local, false, nil
	}

	localMessages := local.Messages()
	seen := make(map[string]struct{}, len(localMessages))
	for _, msg := range localMessages {
		seen[models.MessageID(msg)] = struct{}{}
	}

	merged := localMessages
	for _, msg := range incoming.Messages() {
		if _, exists := seen[models.MessageID(msg)]; exists {
			continue
		}
		merged = append(merged, msg)
	}

	result, err := incoming.WithMessages(merged)
	if err != nil {
		return nil, false, fmt.Errorf("failed to merge conversation %q: %w", incoming.ID(), err)
	}
	return result, true, nil
}

// LWWSet набор записей одного типа, ключ - id записи.
// Порядок записей - порядок первого появления id.
type LWWSet struct {
	elements map[string]models.Record
	merge    MergeFunc
	order    []string
	mu       sync.RWMutex
}

// NewLWWSet создает набор с заданной функцией слияния и начальными записями.
// Начальные записи не проверяются: это локальное состояние как оно есть.
func NewLWWSet(merge MergeFunc, initial []models.Record) *LWWSet {
	s := &LWWSet{
		elements: make(map[string]models.Record, len(initial)),
		merge:    merge,
		order:    make([]string, 0, len(initial)),
	}
	for _, record := range initial {
		id := record.ID()
		if _, exists := s.elements[id]; !exists {
			s.order = append(s.order, id)
		}
		s.elements[id] = record.Clone()
	}
	return s
}

// NewConversationSet создает набор бесед
func NewConversationSet(initial []models.Record) *LWWSet {
	return NewLWWSet(MergeConversation, initial)
}

// NewProjectSet создает набор проектов
func NewProjectSet(initial []models.Record) *LWWSet {
	return NewLWWSet(MergeProject, initial)
}

// Add сливает входящую запись с набором.
// Возвращает итоговую запись и true, если набор изменился.
// Запись без id или с некорректным updatedAt отклоняется с ErrInvalidRecord.
func (s *LWWSet) Add(incoming models.Record) (models.Record, bool, error) {
	meta := incoming.Meta()
	if meta.ID == "" {
		return nil, false, fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if err := validation.ValidateTimestamp(meta.UpdatedAt); err != nil {
		return nil, false, fmt.Errorf("%w: record %q: %v", ErrInvalidRecord, meta.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	local, exists := s.elements[meta.ID]

	result, changed, err := s.merge(local, incoming)
	if err != nil {
		return nil, false, err
	}
	if !changed {
		return local.Clone(), false, nil
	}

	if !exists {
		s.order = append(s.order, meta.ID)
	}
	s.elements[meta.ID] = result
	return result.Clone(), true, nil
}

// Get возвращает копию записи по id или nil, если ее нет
func (s *LWWSet) Get(id string) models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.elements[id].Clone()
}

// GetAll возвращает копии всех записей в порядке появления
func (s *LWWSet) GetAll() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Record, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.elements[id].Clone())
	}
	return result
}

// Size возвращает количество записей
func (s *LWWSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Contains проверяет наличие записи с заданным id
func (s *LWWSet) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.elements[id]
	return exists
}
