package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/iudanet/lansync/internal/client/api"
	"github.com/iudanet/lansync/internal/client/cli"
	"github.com/iudanet/lansync/internal/client/iocli"
	"github.com/iudanet/lansync/internal/client/storage/boltdb"
	"github.com/iudanet/lansync/internal/client/sync"
	"github.com/iudanet/lansync/internal/config"
	"github.com/iudanet/lansync/internal/mdns"
	"github.com/iudanet/lansync/internal/pairing"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", fmt.Sprintf("http://localhost:%d", config.DefaultPort), "Sync server URL")
	pairPayload := flag.String("pair", "", "Pairing URL from the server QR code")
	dbPath := flag.String("db", defaultDBPath(), "Path to local database")
	pinArg := flag.String("pin", "", "Sync PIN (not recommended, use env var or file)")
	pinFile := flag.String("pin-file", "", "Path to file containing sync PIN")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")
	flag.Usage = func() { cli.PrintUsage(os.Stderr) }
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(os.Stderr)
		return 1
	}
	command := args[0]

	level, err := config.ParseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	pin, err := cli.ResolvePin(cli.PinSources{FromFile: *pinFile, FromArgs: *pinArg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	baseURL := *serverURL
	if *pairPayload != "" {
		info, err := pairing.ParsePayload(*pairPayload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		baseURL = "http://" + net.JoinHostPort(info.Host, strconv.Itoa(info.Port))
		// Явно заданный PIN важнее PIN из QR кода
		if pin == nil {
			pin = info.Pin
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0700); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create database directory: %v\n", err)
		return 1
	}

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(baseURL, pin)

	// boltStorage реализует и RecordStorage, и MetadataStorage
	syncService := sync.NewService(apiClient, boltStorage, boltStorage, logger)

	c := cli.New(iocli.NewStdio(), apiClient, syncService, boltStorage, boltStorage, mdns.Discover)

	// Выполняем команду
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lansync-client.db"
	}
	return filepath.Join(home, ".lansync", "client.db")
}

func printVersion() {
	fmt.Printf("lansync companion\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
