package cache

import (
	"github.com/aims/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewStore picks the cache backend from configuration. With redis disabled
// nothing is cached. When redis is enabled but unreachable the service still
// starts and caching is skipped.
func NewStore(cfg config.RedisConfig, logger *zap.Logger) Store {
	if !cfg.Enabled {
		logger.Info("Redis cache disabled")
		return NoopStore{}
	}

	store, err := NewRedisStore(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, serving without cache",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return NoopStore{}
	}

	logger.Info("Using Redis cache", zap.String("addr", cfg.Addr()))
	return store
}
