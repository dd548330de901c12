package stream

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewStreamConsumer_UnsupportedProvider(t *testing.T) {
	logger := zerolog.Nop()

	_, err := NewStreamConsumer(context.Background(), NewStreamConfig("kafka", "", 1, nil), nil, &logger)
	if err == nil || err.Error() != "unsupported stream provider: kafka" {
		t.Errorf("Expected unsupported provider error, got %v", err)
	}
}

func TestNewStreamConsumer_MissingRedisConfig(t *testing.T) {
	logger := zerolog.Nop()

	_, err := NewStreamConsumer(context.Background(), NewStreamConfig("", "", 1, nil), nil, &logger)
	if err == nil || err.Error() != "redis config required" {
		t.Errorf("Expected missing config error, got %v", err)
	}
}
