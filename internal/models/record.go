package models

import (
	"encoding/json"
	"fmt"
)

// Record представляет запись беседы или проекта в том виде, в котором ее хранит
// владеющее приложение. Содержимое непрозрачно для синхронизации: из него
// извлекаются только id, updatedAt и (для бесед) массив messages.
type Record json.RawMessage

// RecordMeta поля записи, которые нужны протоколу синхронизации
type RecordMeta struct {
	ID           string
	UpdatedAt    string // канонический ISO-8601 UTC, лексический порядок = хронологический
	MessageCount int
}

// Поля записи в формате JSON владеющего приложения
const (
	fieldID        = "id"
	fieldUpdatedAt = "updatedAt"
	fieldMessages  = "messages"
)

// MarshalJSON возвращает запись как есть
func (r Record) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON сохраняет копию исходного JSON
func (r *Record) UnmarshalJSON(data []byte) error {
	if r == nil {
		return fmt.Errorf("models.Record: UnmarshalJSON on nil pointer")
	}
	*r = append((*r)[0:0], data...)
	return nil
}

// Meta извлекает id, updatedAt и количество сообщений.
// Некорректная запись не является ошибкой: отсутствующие поля
// или поля неверного типа дают "" и 0.
func (r Record) Meta() RecordMeta {
	var meta RecordMeta

	fields, ok := r.fields()
	if !ok {
		return meta
	}

	meta.ID = stringField(fields, fieldID)
	meta.UpdatedAt = stringField(fields, fieldUpdatedAt)

	if raw, exists := fields[fieldMessages]; exists {
		var messages []json.RawMessage
		if err := json.Unmarshal(raw, &messages); err == nil {
			meta.MessageCount = len(messages)
		}
	}

	return meta
}

// ID возвращает идентификатор записи или "" если его нет
func (r Record) ID() string {
	return r.Meta().ID
}

// UpdatedAt возвращает время последнего изменения или "" если его нет
func (r Record) UpdatedAt() string {
	return r.Meta().UpdatedAt
}

// IsNewerThan сообщает, что запись строго новее other по правилу LWW.
// Сравнение лексическое, поэтому корректно только для канонических меток времени.
func (r Record) IsNewerThan(other Record) bool {
	return r.UpdatedAt() > other.UpdatedAt()
}

// Messages возвращает сообщения беседы в исходном порядке.
// Для проекта или записи без messages возвращает nil.
func (r Record) Messages() []json.RawMessage {
	fields, ok := r.fields()
	if !ok {
		return nil
	}

	raw, exists := fields[fieldMessages]
	if !exists {
		return nil
	}

	var messages []json.RawMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil
	}
	return messages
}

// WithMessages возвращает копию записи с замененным массивом messages
func (r Record) WithMessages(messages []json.RawMessage) (Record, error) {
	fields, ok := r.fields()
	if !ok {
		return nil, fmt.Errorf("record is not a JSON object")
	}

	if messages == nil {
		messages = []json.RawMessage{}
	}

	raw, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal messages: %w", err)
	}
	fields[fieldMessages] = raw

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return Record(data), nil
}

// Clone создает независимую копию записи
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	data := make([]byte, len(r))
	copy(data, r)
	return data
}

// MessageID извлекает id сообщения или "" если его нет
func MessageID(message json.RawMessage) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(message, &fields); err != nil {
		return ""
	}
	return stringField(fields, fieldID)
}

// RecordsFromRaw конвертирует записи из API формата
func RecordsFromRaw(raw []json.RawMessage) []Record {
	records := make([]Record, 0, len(raw))
	for _, item := range raw {
		records = append(records, Record(item))
	}
	return records
}

// RecordsToRaw конвертирует записи в API формат.
// Всегда возвращает не-nil слайс, чтобы в JSON был [] а не null.
func RecordsToRaw(records []Record) []json.RawMessage {
	raw := make([]json.RawMessage, 0, len(records))
	for _, record := range records {
		raw = append(raw, json.RawMessage(record))
	}
	return raw
}

func (r Record) fields() (map[string]json.RawMessage, bool) {
	if len(r) == 0 {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

func stringField(fields map[string]json.RawMessage, name string) string {
	raw, exists := fields[name]
	if !exists {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}
