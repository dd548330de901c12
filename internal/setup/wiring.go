package setup

import (
	"os"
	"strconv"

	"github.com/povarna/dlist/internal/executor"
	"github.com/povarna/dlist/internal/store"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel        string
	APIPort         string
	RedisAddr       string
	RedisPassword   string
	RedisMaxRetries int
	StreamProvider  string
	Stream          string
	Group           string
	ConsumerName    string
	ResultStream    string
	ScenarioPath    string
}

type Dependencies struct {
	Store    *store.MemoryStore
	Executor *executor.Executor
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		APIPort:         getEnv("DLIST_API_PORT", "18080"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisMaxRetries: getEnvInt("REDIS_MAX_RETRIES", 5),
		StreamProvider:  getEnv("STREAM_PROVIDER", "redis"),
		Stream:          getEnv("DLIST_STREAM", "dlist-commands"),
		Group:           getEnv("DLIST_GROUP", "dlist-group"),
		ConsumerName:    getEnv("HOSTNAME", "dlist-consumer"),
		ResultStream:    getEnv("DLIST_RESULT_STREAM", "dlist-results"),
		ScenarioPath:    getEnv("SCENARIO_PATH", ""),
	}
}

func Wire(cfg *Config, logger *zerolog.Logger) *Dependencies {
	lists := store.NewMemoryStore(logger)
	exec := executor.NewExecutor(lists, logger)

	logger.Debug().
		Str("stream_provider", cfg.StreamProvider).
		Str("api_port", cfg.APIPort).
		Msg("dependencies wired")

	return &Dependencies{
		Store:    lists,
		Executor: exec,
		Logger:   logger,
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
