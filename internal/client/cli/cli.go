package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iudanet/lansync/internal/client/iocli"
	"github.com/iudanet/lansync/internal/client/storage"
	"github.com/iudanet/lansync/internal/client/sync"
	"github.com/iudanet/lansync/internal/config"
	"github.com/iudanet/lansync/internal/mdns"
	"github.com/iudanet/lansync/internal/validation"
	"github.com/iudanet/lansync/pkg/api"
)

// ServerClient операции сервера, которые CLI вызывает напрямую
//
//go:generate moq -out mocks_test.go . ServerClient
type ServerClient interface {
	BaseURL() string
	HasPin() bool
	SetPin(pin *string)
	Status(ctx context.Context) (*api.StatusResponse, error)
}

// DiscoverFunc ищет серверы в локальной сети
type DiscoverFunc func(ctx context.Context) ([]mdns.DiscoveredHost, error)

type Cli struct {
	io          iocli.IO
	server      ServerClient
	syncService sync.Service
	records     storage.RecordStorage
	metadata    storage.MetadataStorage
	discover    DiscoverFunc
}

func New(
	io iocli.IO,
	server ServerClient,
	syncService sync.Service,
	records storage.RecordStorage,
	metadata storage.MetadataStorage,
	discover DiscoverFunc,
) *Cli {
	return &Cli{
		io:          io,
		server:      server,
		syncService: syncService,
		records:     records,
		metadata:    metadata,
		discover:    discover,
	}
}

// PinSources источники PIN из командной строки
type PinSources struct {
	FromFile string
	FromArgs string
}

// ResolvePin reads the sync PIN with priority:
// 1. Environment variable LANSYNC_PIN
// 2. File specified in FromFile
// 3. Command-line parameter FromArgs
// Returns nil if no source provided a PIN; the interactive prompt happens
// later and only if the server asks for one.
func ResolvePin(sources PinSources) (*string, error) {
	var pin string

	switch {
	case os.Getenv(config.EnvPin) != "":
		pin = os.Getenv(config.EnvPin)
	case sources.FromFile != "":
		content, err := os.ReadFile(sources.FromFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read pin file: %w", err)
		}
		// Убираем trailing newline/whitespace
		pin = strings.TrimSpace(string(content))
		if pin == "" {
			return nil, fmt.Errorf("pin file is empty")
		}
	case sources.FromArgs != "":
		pin = sources.FromArgs
	default:
		return nil, nil
	}

	if err := validation.ValidatePin(pin); err != nil {
		return nil, fmt.Errorf("invalid pin: %w", err)
	}
	return &pin, nil
}

// ensurePin запрашивает статус сервера и, если сервер требует PIN,
// а он еще не задан, спрашивает его у пользователя
func (c *Cli) ensurePin(ctx context.Context) (*api.StatusResponse, error) {
	status, err := c.server.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("server %s is not reachable: %w", c.server.BaseURL(), err)
	}

	if !status.HasPin || c.server.HasPin() {
		return status, nil
	}

	pin, err := c.io.ReadPassword(fmt.Sprintf("Sync PIN for %q: ", status.ServerName))
	if err != nil {
		return nil, fmt.Errorf("failed to read pin: %w", err)
	}
	if err := validation.ValidatePin(pin); err != nil {
		return nil, fmt.Errorf("invalid pin: %w", err)
	}
	c.server.SetPin(&pin)

	return status, nil
}

func PrintUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `lansync companion

Usage:
  lansync-client [OPTIONS] COMMAND

Options:
  --version           Show version information
  --server URL        Sync server URL (default: http://localhost:19847)
  --pair PAYLOAD      Pairing URL from the server QR code (lansync://pair?...)
  --db PATH           Path to local database (default: ~/.lansync/client.db)
  --pin PIN           Sync PIN (not recommended, use env var or file)
  --pin-file PATH     Path to file containing sync PIN
  --log-level LEVEL   debug, info, warn or error (default: warn)

PIN Priority (highest to lowest):
  1. LANSYNC_PIN environment variable
  2. --pin-file (file path)
  3. --pin (command line)
  4. Interactive prompt when the server requires a PIN

Commands:
  status              Show server and local library status
  discover            Find sync servers on the local network
  sync                Synchronize local library with the server
  list [type]         List local records (conversations, projects)

Examples:
  lansync-client discover
  lansync-client --server http://192.168.1.20:19847 sync
  lansync-client --pair 'lansync://pair?host=192.168.1.20&port=19847&pin=1234' sync
  lansync-client list conversations
`)
}
