package redis

type RedisStreamConfig struct {
	RedisAddr    string
	Stream       string
	Group        string
	ConsumerName string
	// ResultStream receives one entry per processed command. Empty disables it.
	ResultStream string
}

func NewRedisStreamConfig(redisAddr string, stream string, group string, consumerName string, resultStream string) *RedisStreamConfig {
	return &RedisStreamConfig{
		RedisAddr:    redisAddr,
		Stream:       stream,
		Group:        group,
		ConsumerName: consumerName,
		ResultStream: resultStream,
	}
}
