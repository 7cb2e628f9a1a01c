// Package reconcile вычисляет ответы протокола синхронизации по снимку
// общего хранилища: манифест для дешевого сравнения реплик, дельту для pull
// и подтверждение для push.
package reconcile

import (
	"github.com/iudanet/lansync/internal/server/store"
	"github.com/iudanet/lansync/pkg/api"
)

// BuildManifest строит манифест снимка: сначала беседы, затем проекты,
// в порядке вставки, без сортировки
func BuildManifest(snap store.Snapshot) []api.ManifestEntry {
	entries := make([]api.ManifestEntry, 0, len(snap.Conversations)+len(snap.Projects))

	for _, c := range snap.Conversations {
		meta := c.Meta()
		entries = append(entries, api.ManifestEntry{
			ID:           meta.ID,
			UpdatedAt:    meta.UpdatedAt,
			MessageCount: meta.MessageCount,
			Type:         api.TypeConversation,
		})
	}

	for _, p := range snap.Projects {
		meta := p.Meta()
		entries = append(entries, api.ManifestEntry{
			ID:        meta.ID,
			UpdatedAt: meta.UpdatedAt,
			Type:      api.TypeProject,
		})
	}

	return entries
}
