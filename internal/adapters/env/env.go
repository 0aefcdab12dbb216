package env

import (
	"log/slog"
	"os"
	"strings"
)

const (
	ConfigVar    = "SWEEP_CONFIG"
	DestVar      = "SWEEP_DEST"
	OnMissingVar = "SWEEP_ON_MISSING"
	LogLevelVar  = "SWEEP_LOG_LEVEL"

	DefaultConfigPath = "site.yaml"
)

type Overrides struct {
	ConfigPath     string
	DestinationDir string
	OnMissing      string
	LogLevel       slog.Level
}

func Load() Overrides {
	return FromLookup(os.Getenv)
}

func FromLookup(getenv func(string) string) Overrides {
	configPath := getenv(ConfigVar)
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	return Overrides{
		ConfigPath:     configPath,
		DestinationDir: getenv(DestVar),
		OnMissing:      getenv(OnMissingVar),
		LogLevel:       ParseLogLevel(getenv(LogLevelVar)),
	}
}

func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
