// Package config загружает конфигурацию сервера синхронизации из TOML файла.
// По умолчанию файл лежит в ~/.lansync/config.toml; флаги командной строки
// и переменная окружения LANSYNC_PIN имеют приоритет над значениями из файла.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iudanet/lansync/internal/validation"
)

// EnvPin переменная окружения с PIN синхронизации
const EnvPin = "LANSYNC_PIN"

// Значения по умолчанию
const (
	DefaultPort       = 19847
	DefaultServerName = "lansync"
	DefaultLogLevel   = "info"
	DefaultRateLimit  = 5.0
	DefaultRateBurst  = 20
)

// Config структура конфигурационного файла
type Config struct {
	// Pin PIN синхронизации. Пустая строка - без PIN.
	Pin string `toml:"pin"`

	// ServerName имя сервера в /api/sync/status и mDNS
	ServerName string `toml:"server_name"`

	// LibraryPath путь к SQLite базе с беседами и проектами
	// Default: ~/.lansync/library.db
	LibraryPath string `toml:"library_path"`

	// LogLevel уровень логирования: debug, info, warn, error
	LogLevel string `toml:"log_level"`

	// Port TCP порт сервера, 0 - любой свободный
	Port int `toml:"port"`

	// RateLimit запросов в секунду с одного IP к защищенным эндпоинтам, 0 - без ограничения
	RateLimit float64 `toml:"rate_limit"`

	// RateBurst допустимый всплеск запросов
	RateBurst int `toml:"rate_burst"`

	// MDNSEnabled объявлять сервер через mDNS (_lansync._tcp)
	MDNSEnabled bool `toml:"mdns_enabled"`

	// ShowQR печатать QR код для сопряжения при запуске
	ShowQR bool `toml:"show_qr"`
}

// Defaults возвращает конфигурацию по умолчанию
func Defaults() *Config {
	return &Config{
		ServerName:  DefaultServerName,
		LibraryPath: defaultLibraryPath(),
		LogLevel:    DefaultLogLevel,
		Port:        DefaultPort,
		RateLimit:   DefaultRateLimit,
		RateBurst:   DefaultRateBurst,
		MDNSEnabled: true,
	}
}

// DefaultConfigPath возвращает ~/.lansync/config.toml
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".lansync", "config.toml"), nil
}

func defaultLibraryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lansync-library.db"
	}
	return filepath.Join(home, ".lansync", "library.db")
}

// Load читает TOML файл поверх значений по умолчанию.
//
// Поведение:
//   - Пустой path: используется файл по умолчанию, если он существует; иначе Defaults().
//   - Явный path: файл обязан существовать.
//   - Неизвестные ключи считаются ошибкой, чтобы опечатки не проходили молча.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		if _, err := os.Stat(defaultPath); os.IsNotExist(err) {
			return cfg, nil
		}
		path = defaultPath
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// ApplyEnv переопределяет PIN значением LANSYNC_PIN, если переменная задана
func (c *Config) ApplyEnv() {
	if pin, ok := os.LookupEnv(EnvPin); ok {
		c.Pin = pin
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", c.Port)
	}

	if c.Pin != "" {
		if err := validation.ValidatePin(c.Pin); err != nil {
			return fmt.Errorf("invalid pin: %w", err)
		}
	}

	if strings.TrimSpace(c.ServerName) == "" {
		return fmt.Errorf("server_name cannot be empty")
	}

	if c.LibraryPath == "" {
		return fmt.Errorf("library_path cannot be empty")
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit cannot be negative")
	}
	if c.RateBurst < 0 {
		return fmt.Errorf("rate_burst cannot be negative")
	}

	return nil
}

// PinPtr возвращает PIN в виде, который ожидает сервер: nil, если PIN не задан
func (c *Config) PinPtr() *string {
	if c.Pin == "" {
		return nil
	}
	pin := c.Pin
	return &pin
}

// ParseLogLevel переводит строковый уровень в slog.Level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (expected debug, info, warn or error)", level)
	}
}

// WriteDefault создает файл конфигурации с настройками по умолчанию.
// Существующий файл не перезаписывается.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString("# lansync configuration\n\n"); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(Defaults()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
