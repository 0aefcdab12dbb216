package env

import (
	"log/slog"
	"testing"
)

func TestFromLookup(t *testing.T) {
	vars := map[string]string{
		DestVar:      "public",
		OnMissingVar: "skip",
		LogLevelVar:  "debug",
	}
	got := FromLookup(func(key string) string { return vars[key] })

	if got.ConfigPath != DefaultConfigPath {
		t.Errorf("ConfigPath = %q, want %q", got.ConfigPath, DefaultConfigPath)
	}
	if got.DestinationDir != "public" {
		t.Errorf("DestinationDir = %q", got.DestinationDir)
	}
	if got.OnMissing != "skip" {
		t.Errorf("OnMissing = %q", got.OnMissing)
	}
	if got.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", got.LogLevel)
	}

	vars[ConfigVar] = "docs/site.yaml"
	if got := FromLookup(func(key string) string { return vars[key] }); got.ConfigPath != "docs/site.yaml" {
		t.Errorf("ConfigPath = %q, want docs/site.yaml", got.ConfigPath)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for input, want := range tests {
		if got := ParseLogLevel(input); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
