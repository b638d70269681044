package config

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config holds runtime settings for every swimadmin surface.
type Config struct {
	Addr          string
	LogLevel      string
	LogFormat     string
	LogFile       string
	Seed          bool
	CORSOrigins   []string
	SaveTimeoutMs int
}

// DefaultConfig returns a Config with the stock defaults: demo data seeded,
// API on :8080, text logs at info.
func DefaultConfig() Config {
	return Config{
		Addr:          ":8080",
		LogLevel:      "info",
		LogFormat:     "text",
		Seed:          true,
		CORSOrigins:   []string{"http://localhost:3000"},
		SaveTimeoutMs: 5000,
	}
}

// Load reads an optional .env file from the working directory and then the
// environment.
func Load() (Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return Config{}, err
	}
	return FromEnv(), nil
}

// LoadDotEnv copies the variables in path into the process environment.
// A missing file is not an error; variables already set win.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// FromEnv reads configuration from environment variables, falling back to
// defaults for any unset or malformed values.
func FromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SWIMADMIN_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SWIMADMIN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("SWIMADMIN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv("SWIMADMIN_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("SWIMADMIN_SEED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Seed = b
		}
	}
	if v := os.Getenv("SWIMADMIN_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("SWIMADMIN_SAVE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SaveTimeoutMs = n
		}
	}
	return cfg
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// BindFlags registers command-line overrides for cfg on fs.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text, json)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "load the demo curriculum at startup")
	fs.StringSliceVar(&cfg.CORSOrigins, "cors-origin", cfg.CORSOrigins, "allowed CORS origins")
	fs.IntVar(&cfg.SaveTimeoutMs, "save-timeout-ms", cfg.SaveTimeoutMs, "map save timeout in milliseconds")
}

// SaveTimeout returns the map save timeout as a duration.
func (c Config) SaveTimeout() time.Duration {
	return time.Duration(c.SaveTimeoutMs) * time.Millisecond
}

// Level maps LogLevel to a slog level; unknown values mean info.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Level()}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
