package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/dlist/internal/executor"
	"github.com/povarna/dlist/internal/models"
	red "github.com/povarna/dlist/internal/redis"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	data := flag.String("d", "", "Inline JSON Command")
	stream := flag.String("stream", "", "Stream name (defaults to DLIST_STREAM or dlist-commands)")
	flag.Parse()

	if *data == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -d '<json>'")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(*data, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(data, stream string) error {
	_ = godotenv.Load()

	if stream == "" {
		stream = os.Getenv("DLIST_STREAM")
	}
	if stream == "" {
		stream = "dlist-commands"
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	// Reject bad commands here rather than leaving them for the consumer.
	var cmd models.Command
	if err := json.Unmarshal([]byte(data), &cmd); err != nil {
		return err
	}
	if err := executor.Validate(cmd); err != nil {
		return err
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 3)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"payload": data},
	}).Result()
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Str("list", cmd.List).Str("op", string(cmd.Op)).Msg("Published successfully!")
	return nil
}
