package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/povarna/dlist/internal/executor"
	"github.com/povarna/dlist/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// StreamClient is the slice of the go-redis client the consumer uses.
type StreamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
	Close() error
}

type Consumer struct {
	client       StreamClient
	stream       string
	groupID      string
	consumerName string
	resultStream string
	executor     *executor.Executor
	logger       *zerolog.Logger
}

func NewConsumer(client StreamClient, cfg *RedisStreamConfig, exec *executor.Executor, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       cfg.Stream,
		groupID:      cfg.Group,
		consumerName: cfg.ConsumerName,
		resultStream: cfg.ResultStream,
		executor:     exec,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, stream := range msgs {
			for _, msg := range stream.Messages {
				c.process(ctx, msg)
			}
		}
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

// process runs one message to completion. Once read, a message is executed,
// published and acked even if ctx is cancelled meanwhile.
func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	ctx = context.WithoutCancel(ctx)

	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	cmd, err := decode(msg)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}

	// List errors travel in the result, so the message is acked either way.
	result, err := c.executor.Execute(ctx, cmd)
	if err == nil {
		c.logger.Info().
			Str("id", msg.ID).
			Str("list", result.List).
			Str("op", string(result.Op)).
			Str("rendered", result.Rendered).
			Msg("Command complete")
	}

	c.publish(ctx, msg.ID, result)
	c.ack(ctx, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, msgID string, result models.Result) {
	if c.resultStream == "" {
		return
	}

	if result.ID == "" {
		result.ID = msgID
	}

	payload, err := json.Marshal(result)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to encode result")
		return
	}

	err = c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultStream,
		Values: map[string]any{"payload": string(payload)},
	}).Err()
	if err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to publish result")
	}
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}

func decode(msg redis.XMessage) (models.Command, error) {
	var cmd models.Command

	payload, ok := msg.Values["payload"].(string)
	if !ok {
		return cmd, fmt.Errorf("missing payload field")
	}

	if err := json.Unmarshal([]byte(payload), &cmd); err != nil {
		return cmd, fmt.Errorf("invalid payload: %w", err)
	}
	return cmd, nil
}
