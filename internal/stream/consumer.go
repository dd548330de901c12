package stream

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

type StreamConsumer interface {
	Setup(ctx context.Context) error
	Start(ctx context.Context) error
	Stop() error
}

// Run sets the consumer up and consumes until ctx is done. Stop is only called
// after Start has returned, so an in-flight message finishes first.
func Run(ctx context.Context, consumer StreamConsumer, logger *zerolog.Logger) error {
	if err := consumer.Setup(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("Consumer stopped with error")
		}
	}()

	// Wait for context to be done
	<-ctx.Done()
	logger.Info().Msg("Shutting down...")

	<-done
	return consumer.Stop()
}
