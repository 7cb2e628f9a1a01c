package validation

import (
	"fmt"
	"regexp"
	"time"
)

// TimestampPattern определяет канонический формат updatedAt:
// UTC, дополненный нулями ISO-8601 с суффиксом Z и опциональными долями секунды.
// Только для таких строк лексическое сравнение совпадает с хронологическим.
var TimestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,9})?Z$`)

// ValidateTimestamp проверяет, что updatedAt записан в каноническом формате
// и является реальной датой.
// Точность долей секунды должна быть одинаковой у всех записей одного приложения:
// "...00Z" и "...00.000Z" описывают один момент, но сравниваются лексически по-разному.
func ValidateTimestamp(ts string) error {
	if ts == "" {
		return fmt.Errorf("timestamp cannot be empty")
	}

	if !TimestampPattern.MatchString(ts) {
		return fmt.Errorf("timestamp %q is not canonical UTC ISO-8601", ts)
	}

	if _, err := time.Parse(time.RFC3339Nano, ts); err != nil {
		return fmt.Errorf("timestamp %q is not a valid date: %w", ts, err)
	}

	return nil
}

// FormatTimestamp форматирует время в канонический вид с миллисекундами,
// как это делает клиентское приложение (Date.toISOString)
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
