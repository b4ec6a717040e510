package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/venkatesh141/Ecom/config"

	"github.com/redis/go-redis/v9"
)

var redisDB redis.UniversalClient

// InitRedis creates a client for standalone or cluster depending on config.
func InitRedis(cfg *config.RedisConfig) (redis.UniversalClient, error) {
	addrs := cfg.Addrs
	if len(addrs) == 0 {
		addrs = []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)}
	}

	uopts := &redis.UniversalOptions{
		Addrs:           addrs,
		DB:              cfg.DB,
		Password:        cfg.Password,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	}

	redisDB = redis.NewUniversalClient(uopts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := redisDB.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return redisDB, nil
}

func GetRedisDB() redis.UniversalClient {
	return redisDB
}
