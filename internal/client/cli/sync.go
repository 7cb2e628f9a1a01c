package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/lansync/pkg/api"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	status, err := c.ensurePin(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("Synchronizing with %q at %s...\n", status.ServerName, c.server.BaseURL())

	result, err := c.syncService.Sync(ctx)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			return fmt.Errorf("server rejected the sync PIN: %w", err)
		case errors.Is(err, api.ErrRateLimited):
			return fmt.Errorf("too many requests, try again in a moment: %w", err)
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed successfully!")
	c.io.Println()
	c.io.Printf("Pushed to server:   %d conversation(s), %d project(s)\n", result.PushedConversations, result.PushedProjects)
	c.io.Printf("Pulled from server: %d conversation(s), %d project(s)\n", result.PulledConversations, result.PulledProjects)
	c.io.Printf("Merged locally:     %d record(s)\n", result.MergedEntries)
	if result.SkippedEntries > 0 {
		c.io.Printf("Skipped (invalid):  %d\n", result.SkippedEntries)
	}
	if result.Pushed() > 0 {
		c.io.Println()
		c.io.Println("Pushed records are merged by the desktop app in the background.")
	}

	return nil
}
