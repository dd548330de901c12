package stream

import "github.com/povarna/dlist/internal/stream/redis"

type StreamConfig struct {
	Provider      string // redis, kafka, sqs, etc
	RedisPassword string
	MaxRetries    int
	RedisConfig   *redis.RedisStreamConfig
}

func NewStreamConfig(provider string, password string, maxRetries int, redisConfig *redis.RedisStreamConfig) *StreamConfig {
	return &StreamConfig{
		Provider:      provider,
		RedisPassword: password,
		MaxRetries:    maxRetries,
		RedisConfig:   redisConfig,
	}
}
