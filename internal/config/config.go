package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds process-level settings. Instrument parameters live in decks,
// not here.
type Config struct {
	// Logging
	LogFile  string
	LogLevel slog.Level

	// Deck used when no --deck or --preset flag is given
	DeckFile string

	// Concurrent sweep entries, 0 = GOMAXPROCS
	Workers int
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		LogFile:  getEnv("SEMPROBE_LOG_FILE", filepath.Join(os.TempDir(), "semprobe.log")),
		LogLevel: parseLogLevel(getEnv("SEMPROBE_LOG_LEVEL", "INFO")),
		DeckFile: getEnv("SEMPROBE_DECK", ""),
		Workers:  parseInt(getEnv("SEMPROBE_WORKERS", "0")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
