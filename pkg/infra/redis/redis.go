package redis_wrapper

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisConfig struct {
	ConnectionURL       string `yaml:"connection_url"`
	PoolSize            int    `yaml:"pool_size"`
	DialTimeoutSeconds  int    `yaml:"dial_timeout_seconds"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	TradeKey            string `yaml:"trade_key"`
	TradeMaxLen         int64  `yaml:"trade_max_len"`
}

// InitRedis create a redis client from config
func InitRedis(redisCfg *RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisCfg.ConnectionURL)
	if err != nil {
		zap.S().Debugf("parse redis url fail: %+v", err)
		return nil, err
	}

	opts.PoolSize = redisCfg.PoolSize
	opts.DialTimeout = time.Duration(redisCfg.DialTimeoutSeconds) * time.Second
	opts.ReadTimeout = time.Duration(redisCfg.ReadTimeoutSeconds) * time.Second
	opts.WriteTimeout = time.Duration(redisCfg.WriteTimeoutSeconds) * time.Second

	client := redis.NewClient(opts)

	if cmd := client.Ping(context.Background()); cmd.Err() != nil {
		return nil, cmd.Err()
	}

	zap.S().Debug("connect to redis successful")
	return client, nil
}
