package cache

import (
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/stayops/revenued/internal/config"
	"go.uber.org/zap"
)

// NewStore selects the cache backend from config: Redis when an address
// is configured, a process-local TTL map otherwise.
func NewStore(cfg config.Config, log *zap.Logger) Store {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		log.Info("redis address not configured, using in-process revenue cache")
		return NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.RedisPassword),
		DB:       cfg.RedisDB,
	})
	return NewRedisStore(client)
}
