package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "status":
		return c.runStatus(ctx)
	case "discover":
		return c.runDiscover(ctx)
	case "sync":
		return c.runSync(ctx)
	case "list":
		return c.runList(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
