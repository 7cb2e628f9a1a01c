package reconcile

import (
	"github.com/iudanet/lansync/internal/models"
	"github.com/iudanet/lansync/internal/server/store"
	"github.com/iudanet/lansync/pkg/api"
)

// Ledger отображение id -> updatedAt, который клиент уже видел
type Ledger map[string]string

// NewLedger строит ledger из known items клиента.
// При повторе id побеждает последнее значение.
func NewLedger(known []api.KnownItem) Ledger {
	ledger := make(Ledger, len(known))
	for _, item := range known {
		ledger[item.ID] = item.UpdatedAt
	}
	return ledger
}

// Wants сообщает, нужна ли клиенту запись: ее id нет в ledger
// или ее updatedAt лексически больше известного клиенту
func (l Ledger) Wants(meta models.RecordMeta) bool {
	known, ok := l[meta.ID]
	if !ok {
		return true
	}
	return meta.UpdatedAt > known
}

// Pull возвращает полные записи, которых у клиента нет или которые у него устарели.
//
// Удаления не передаются: запись, удаленная из хранилища после прошлой
// синхронизации, просто перестает попадать в ответы, и клиент хранит
// устаревшую копию бессрочно.
func Pull(snap store.Snapshot, known []api.KnownItem) api.PullResponse {
	ledger := NewLedger(known)

	return api.PullResponse{
		Conversations: models.RecordsToRaw(filterWanted(snap.Conversations, ledger)),
		Projects:      models.RecordsToRaw(filterWanted(snap.Projects, ledger)),
	}
}

func filterWanted(records []models.Record, ledger Ledger) []models.Record {
	wanted := make([]models.Record, 0, len(records))
	for _, record := range records {
		if ledger.Wants(record.Meta()) {
			wanted = append(wanted, record)
		}
	}
	return wanted
}
