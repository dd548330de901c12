package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/dlist/internal/setup"
	applog "github.com/povarna/dlist/internal/setup/logger"
	"github.com/povarna/dlist/internal/stream"
	"github.com/povarna/dlist/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()

	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := applog.New(cfg.LogLevel, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = logger

	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Redis client
	streamCfg := stream.NewStreamConfig(
		cfg.StreamProvider,
		cfg.RedisPassword,
		cfg.RedisMaxRetries,
		redis.NewRedisStreamConfig(
			cfg.RedisAddr,
			cfg.Stream,
			cfg.Group,
			cfg.ConsumerName,
			cfg.ResultStream,
		),
	)

	deps := setup.Wire(cfg, &logger)

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.Executor, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}

	if err := stream.Run(ctx, consumer, &logger); err != nil {
		log.Fatal().Err(err).Msg("Consumer failed")
	}

	log.Info().Msg("DList consumer stopped")
}
