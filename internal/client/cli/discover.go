package cli

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"
)

// discoverTimeout сколько ждать ответов mDNS
const discoverTimeout = 3 * time.Second

func (c *Cli) runDiscover(ctx context.Context) error {
	if c.discover == nil {
		return fmt.Errorf("discovery is not available")
	}

	c.io.Println("Searching for sync servers on the local network...")
	c.io.Println()

	ctx, cancel := context.WithTimeout(ctx, discoverTimeout)
	defer cancel()

	hosts, err := c.discover(ctx)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if len(hosts) == 0 {
		c.io.Println("No servers found.")
		c.io.Println("Make sure the desktop app has sync enabled and both devices share the network.")
		return nil
	}

	c.io.Printf("Found %d server(s):\n", len(hosts))
	c.io.Println()
	for i, host := range hosts {
		pin := "no PIN"
		if host.HasPin {
			pin = "PIN required"
		}
		c.io.Printf("%d. %s\n", i+1, host.Name)
		c.io.Printf("   URL: http://%s (%s)\n", net.JoinHostPort(host.Host, strconv.Itoa(host.Port)), pin)
	}

	return nil
}
