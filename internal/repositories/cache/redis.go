package cache

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"standsreg/internal/config"
)

// NewRedisClient builds a redis client from the loaded configuration.
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}
