// Package config reads process settings from the environment.
//
// None of these settings change how the game plays; they control diagnostics
// and trace export only.
package config

import (
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvLogLevel         = "GUESSINGGAME_LOG_LEVEL"
	EnvHoneycombAPIKey  = "HONEYCOMB_GUESSINGGAME_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_GUESSINGGAME_DATASET"
	EnvOTLPEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

const (
	defaultLogLevel = "info"
	defaultDataset  = "guessinggame"
)

// Config holds settings loaded from the environment.
type Config struct {
	LogLevel         string
	HoneycombAPIKey  string
	HoneycombDataset string
	// OTLPEndpoint is an explicitly configured collector endpoint, if any.
	OTLPEndpoint string
}

// Load builds a Config from the current environment, applying defaults.
func Load() Config {
	cfg := Config{
		LogLevel:         strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogLevel))),
		HoneycombAPIKey:  os.Getenv(EnvHoneycombAPIKey),
		HoneycombDataset: os.Getenv(EnvHoneycombDataset),
		OTLPEndpoint:     os.Getenv(EnvOTLPEndpoint),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.HoneycombDataset == "" {
		cfg.HoneycombDataset = defaultDataset
	}
	return cfg
}

// TelemetryEnabled reports whether traces have somewhere to go.
func (c Config) TelemetryEnabled() bool {
	return c.OTLPEndpoint != "" || c.HoneycombAPIKey != ""
}
