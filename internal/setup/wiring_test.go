package setup

import (
	"context"
	"testing"

	"github.com/povarna/dlist/internal/models"
	"github.com/rs/zerolog"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "DLIST_API_PORT", "REDIS_ADDR", "REDIS_MAX_RETRIES", "DLIST_STREAM", "HOSTNAME"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: %q, want info", cfg.LogLevel)
	}
	if cfg.APIPort != "18080" {
		t.Errorf("APIPort: %q, want 18080", cfg.APIPort)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr: %q, want localhost:6379", cfg.RedisAddr)
	}
	if cfg.RedisMaxRetries != 5 {
		t.Errorf("RedisMaxRetries: %d, want 5", cfg.RedisMaxRetries)
	}
	if cfg.Stream != "dlist-commands" {
		t.Errorf("Stream: %q, want dlist-commands", cfg.Stream)
	}
	if cfg.ConsumerName != "dlist-consumer" {
		t.Errorf("ConsumerName: %q, want dlist-consumer", cfg.ConsumerName)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DLIST_API_PORT", "9000")
	t.Setenv("REDIS_MAX_RETRIES", "2")
	t.Setenv("REDIS_ADDR", "redis:6380")

	cfg := LoadConfig()
	if cfg.APIPort != "9000" {
		t.Errorf("APIPort: %q, want 9000", cfg.APIPort)
	}
	if cfg.RedisMaxRetries != 2 {
		t.Errorf("RedisMaxRetries: %d, want 2", cfg.RedisMaxRetries)
	}
	if cfg.RedisAddr != "redis:6380" {
		t.Errorf("RedisAddr: %q, want redis:6380", cfg.RedisAddr)
	}
}

func TestLoadConfig_BadIntFallsBack(t *testing.T) {
	t.Setenv("REDIS_MAX_RETRIES", "lots")

	if cfg := LoadConfig(); cfg.RedisMaxRetries != 5 {
		t.Errorf("RedisMaxRetries: %d, want 5", cfg.RedisMaxRetries)
	}
}

func TestWire(t *testing.T) {
	logger := zerolog.Nop()
	deps := Wire(LoadConfig(), &logger)

	value := 3
	if _, err := deps.Executor.Execute(context.Background(), models.Command{List: "w", Op: models.OpPush, Value: &value}); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if _, ok := deps.Store.Get("w"); !ok {
		t.Error("Expected executor and store to share lists")
	}
}
