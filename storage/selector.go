package storage

import (
	"go.uber.org/zap"

	"items-api/config"
)

// Backend kind labels, reported in response messages so a manual tester
// can tell which database served a request.
const (
	KindRemote = "remote"
	KindLocal  = "local"
)

// Select picks the storage backend for the process: the remote store when
// it can be constructed from configuration, otherwise the local fallback.
// It is called once at startup and the result is passed to the handler
// layer, so remote is never re-attempted after a fallback. When a redis
// address is configured the chosen store is wrapped in the cache.
func Select(cfg *config.Config, logger *zap.Logger) (Store, string, error) {
	var store Store
	var kind string

	remote, err := NewSupabaseStore(cfg)
	if err == nil {
		store, kind = remote, KindRemote
	} else {
		logger.Info("remote backend unavailable, falling back to local database",
			zap.Error(err))
		local, err := NewLocalStore(cfg.DatabasePath)
		if err != nil {
			return nil, "", err
		}
		store, kind = local, KindLocal
	}

	if cfg.RedisAddr != "" {
		store = NewCachedStore(store, newRedisClient(cfg.RedisAddr))
		logger.Info("item cache enabled", zap.String("redis_addr", cfg.RedisAddr))
	}

	logger.Info("storage backend selected", zap.String("backend", kind))
	return store, kind, nil
}
