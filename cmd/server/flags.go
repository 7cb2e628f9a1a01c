package main

import (
	"flag"

	"github.com/iudanet/lansync/internal/config"
)

// serverFlags флаги командной строки сервера
type serverFlags struct {
	configPath  string
	pin         string
	name        string
	libraryPath string
	logLevel    string
	importPath  string
	port        int
	showVersion bool
	initConfig  bool
	showQR      bool
	noMDNS      bool
	// pinSet флаг -pin задан явно, в том числе пустым значением
	pinSet bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*serverFlags, error) {
	f := &serverFlags{}
	fs.BoolVar(&f.showVersion, "version", false, "Show version information")
	fs.StringVar(&f.configPath, "config", "", "Path to config file (default: ~/.lansync/config.toml)")
	fs.BoolVar(&f.initConfig, "init-config", false, "Write default config file and exit")
	fs.IntVar(&f.port, "port", -1, "Sync server port (0 - any free port)")
	fs.StringVar(&f.pin, "pin", "", "Sync PIN (prefer LANSYNC_PIN or config file); -pin= disables the PIN")
	fs.StringVar(&f.name, "name", "", "Server name shown to companions")
	fs.StringVar(&f.libraryPath, "library", "", "Path to library database")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.importPath, "import", "", "Merge records from a JSON export before starting")
	fs.BoolVar(&f.showQR, "qr", false, "Print pairing QR code on start")
	fs.BoolVar(&f.noMDNS, "no-mdns", false, "Do not advertise the server via mDNS")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "pin" {
			f.pinSet = true
		}
	})

	return f, nil
}

// apply переопределяет значения из файла и окружения заданными флагами
func (f *serverFlags) apply(cfg *config.Config) {
	if f.port >= 0 {
		cfg.Port = f.port
	}
	if f.pinSet {
		cfg.Pin = f.pin
	}
	if f.name != "" {
		cfg.ServerName = f.name
	}
	if f.libraryPath != "" {
		cfg.LibraryPath = f.libraryPath
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.showQR {
		cfg.ShowQR = true
	}
	if f.noMDNS {
		cfg.MDNSEnabled = false
	}
}
