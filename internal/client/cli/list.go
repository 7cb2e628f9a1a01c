package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/lansync/internal/client/storage"
	"github.com/iudanet/lansync/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	kinds := storage.Kinds
	if len(args) > 0 {
		switch args[0] {
		case "conversations", "conversation":
			kinds = []string{storage.KindConversation}
		case "projects", "project":
			kinds = []string{storage.KindProject}
		case "all":
		default:
			return fmt.Errorf("unknown record type: %s. Use: conversations, projects or all", args[0])
		}
	}

	for i, kind := range kinds {
		if i > 0 {
			c.io.Println()
		}
		if err := c.listKind(ctx, kind); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cli) listKind(ctx context.Context, kind string) error {
	records, err := c.records.ListRecords(ctx, kind)
	if err != nil {
		return fmt.Errorf("failed to list %s records: %w", kind, err)
	}

	c.io.Printf("=== %s ===\n", pluralKind(kind))
	c.io.Println()

	if len(records) == 0 {
		c.io.Println("No records found.")
		return nil
	}

	for i, record := range records {
		meta := record.Meta()
		c.io.Printf("%d. %s\n", i+1, recordTitle(record))
		c.io.Printf("   ID:      %s\n", meta.ID)
		c.io.Printf("   Updated: %s\n", meta.UpdatedAt)
		if kind == storage.KindConversation {
			c.io.Printf("   Messages: %d\n", meta.MessageCount)
		}
	}

	return nil
}

// recordTitle возвращает заголовок беседы или имя проекта
func recordTitle(record models.Record) string {
	var fields struct {
		Title string `json:"title"`
		Name  string `json:"name"`
	}
	_ = json.Unmarshal(record, &fields)

	switch {
	case fields.Title != "":
		return fields.Title
	case fields.Name != "":
		return fields.Name
	default:
		return "(untitled)"
	}
}
