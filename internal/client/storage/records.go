package storage

import (
	"context"

	"github.com/iudanet/lansync/internal/models"
	"github.com/iudanet/lansync/pkg/api"
)

// Типы записей, совпадают с типами манифеста
const (
	KindConversation = api.TypeConversation
	KindProject      = api.TypeProject
)

// Kinds перечисляет типы записей в порядке синхронизации
var Kinds = []string{KindConversation, KindProject}

// RecordStorage defines interface for storing library records on client
type RecordStorage interface {
	// SaveRecord stores or replaces a record by its id
	SaveRecord(ctx context.Context, kind string, record models.Record) error

	// GetRecord retrieves a record by id
	// Returns ErrRecordNotFound if record doesn't exist
	GetRecord(ctx context.Context, kind, id string) (models.Record, error)

	// ListRecords returns all records of a kind ordered by id
	ListRecords(ctx context.Context, kind string) ([]models.Record, error)

	// DeleteRecord removes a record, missing record is not an error
	DeleteRecord(ctx context.Context, kind, id string) error
}

// ValidKind проверяет тип записи
func ValidKind(kind string) bool {
	return kind == KindConversation || kind == KindProject
}
