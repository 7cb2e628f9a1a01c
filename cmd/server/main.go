package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iudanet/lansync/internal/app"
	"github.com/iudanet/lansync/internal/config"
	"github.com/iudanet/lansync/internal/mdns"
	"github.com/iudanet/lansync/internal/pairing"
	"github.com/iudanet/lansync/internal/server"
	"github.com/iudanet/lansync/internal/server/events"
	"github.com/iudanet/lansync/internal/server/storage/sqlite"
	"github.com/iudanet/lansync/internal/server/store"
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
	f, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return 2
	}

	// Show version and exit if requested
	if f.showVersion {
		printVersion()
		return 0
	}

	if f.initConfig {
		path := f.configPath
		if path == "" {
			defaultPath, err := config.DefaultConfigPath()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 1
			}
			path = defaultPath
		}
		if err := config.WriteDefault(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("Config written to %s\n", path)
		return 0
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg.ApplyEnv()

	// Флаги командной строки переопределяют файл и окружение
	f.apply(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		return 1
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(filepath.Dir(cfg.LibraryPath), 0700); err != nil {
		logger.Error("Failed to create library directory", "error", err)
		return 1
	}

	library, err := sqlite.New(ctx, cfg.LibraryPath, logger)
	if err != nil {
		logger.Error("Failed to open library", "path", cfg.LibraryPath, "error", err)
		return 1
	}
	defer func() {
		if err := library.Close(); err != nil {
			logger.Error("Failed to close library", "error", err)
		}
	}()

	bus := events.NewBus(logger, events.DefaultBufferSize)
	defer bus.Close()

	st := store.New()
	manager := server.NewManager(logger, st, bus)

	var advertiser app.Advertiser
	if cfg.MDNSEnabled {
		advertiser = mdns.NewAdvertiser()
	}

	host := app.NewHost(logger, library, st, bus, manager, advertiser)

	if f.importPath != "" {
		if err := importFile(ctx, host, f.importPath); err != nil {
			logger.Error("Import failed", "path", f.importPath, "error", err)
			return 1
		}
	}

	serverCfg := server.Config{
		Pin:        cfg.PinPtr(),
		ServerName: cfg.ServerName,
		Port:       cfg.Port,
		RateLimit:  cfg.RateLimit,
		RateBurst:  cfg.RateBurst,
	}

	if err := host.Start(ctx, serverCfg); err != nil {
		var bindErr *server.BindError
		if !errors.As(err, &bindErr) {
			logger.Error("Failed to start", "error", err)
			return 1
		}
		// Приложение продолжает работать без синхронизации
		logger.Warn("Sync server is unavailable, continuing without it",
			"port", bindErr.Port,
			"error", bindErr.Err,
		)
	}
	defer host.Stop()

	if host.IsRunning() {
		logger.Info("Sync server started",
			"name", cfg.ServerName,
			"port", host.Port(),
			"pin", cfg.Pin != "",
			"mdns", cfg.MDNSEnabled,
		)
		if cfg.ShowQR {
			showPairing(logger, cfg, host.Port())
		}
	}

	<-ctx.Done()
	logger.Info("Shutting down")
	return 0
}

func importFile(ctx context.Context, host *app.Host, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	result, err := host.Import(ctx, f)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d conversation(s), %d project(s), skipped %d\n",
		result.Conversations, result.Projects, result.Skipped)
	return nil
}

func showPairing(logger *slog.Logger, cfg *config.Config, port int) {
	ip, err := pairing.LocalIP()
	if err != nil {
		logger.Warn("Cannot show pairing code", "error", err)
		return
	}

	pairing.DisplayQR(os.Stdout, pairing.Info{
		Pin:  cfg.PinPtr(),
		Host: ip,
		Name: cfg.ServerName,
		Port: port,
	})
}

func printVersion() {
	fmt.Printf("lansync server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
