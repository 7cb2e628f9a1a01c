package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/lansync/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Sync Server ===")
	c.io.Println()
	c.io.Printf("Address:  %s\n", c.server.BaseURL())

	status, err := c.server.Status(ctx)
	if err != nil {
		// Локальная часть все равно полезна
		c.io.Printf("Status:   unreachable (%v)\n", err)
	} else {
		c.io.Printf("Name:     %s\n", status.ServerName)
		c.io.Printf("Protocol: v%d\n", status.Version)
		c.io.Printf("Records:  %d conversation(s), %d project(s)\n", status.ConversationCount, status.ProjectCount)
		if status.HasPin {
			c.io.Println("PIN:      required")
		} else {
			c.io.Println("PIN:      not required")
		}
	}

	c.io.Println()
	c.io.Println("=== Local Library ===")
	c.io.Println()

	nodeID, err := c.metadata.NodeID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get node id: %w", err)
	}
	c.io.Printf("Node ID:       %s\n", nodeID)

	for _, kind := range storage.Kinds {
		records, err := c.records.ListRecords(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to list %s records: %w", kind, err)
		}
		c.io.Printf("%-14s %d\n", pluralKind(kind)+":", len(records))
	}

	lastSyncedAt, err := c.metadata.GetLastSyncedAt(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync time: %w", err)
	}
	if lastSyncedAt == "" {
		lastSyncedAt = "never"
	}
	c.io.Printf("Last synced:   %s\n", lastSyncedAt)

	return nil
}

func pluralKind(kind string) string {
	switch kind {
	case storage.KindConversation:
		return "Conversations"
	case storage.KindProject:
		return "Projects"
	default:
		return kind
	}
}
