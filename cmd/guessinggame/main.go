// Package main is the entry point for the guessing game.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/guessinggame/internal/config"
	"github.com/samdwyer/guessinggame/internal/game"
	"github.com/samdwyer/guessinggame/internal/logging"
	"github.com/samdwyer/guessinggame/internal/telemetry"
)

func main() {
	// Load .env file for local development; env vars may also be set directly
	envErr := godotenv.Load()

	cfg := config.Load()
	log.Logger = logging.New(os.Stderr, cfg.LogLevel)
	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// run plays one game, flushing traces before it returns.
func run(ctx context.Context, cfg config.Config) error {
	if cfg.TelemetryEnabled() {
		setupOTelEnv(cfg)

		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, running without traces")
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warn().Err(err).Msg("error shutting down telemetry")
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	g := game.New(game.Config{}, os.Stdin, os.Stdout, log.Logger)

	_, err := g.Run(ctx)
	return err
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv(cfg config.Config) {
	if cfg.HoneycombAPIKey == "" {
		return
	}
	if cfg.OTLPEndpoint == "" {
		os.Setenv(config.EnvOTLPEndpoint, "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", cfg.HoneycombAPIKey, cfg.HoneycombDataset))
}
