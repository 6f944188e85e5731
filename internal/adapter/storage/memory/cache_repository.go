package memory

import (
	"context"
	"fmt"
	"time"

	"subname-minter/internal/config"
	"subname-minter/internal/domain/entity"
	domainRepo "subname-minter/internal/domain/repository"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.CacheRepository = (*CacheRepository)(nil)

const checkedRPCsKeyPrefix = "network_checked_rpcs_"

// CacheRepository implements domainRepo.CacheRepository using the go-cache in-memory library.
type CacheRepository struct {
	cache  *cache.Cache
	logger *zap.Logger
	ttl    time.Duration
}

// NewCacheRepository creates a new in-memory cache for RPC health results.
func NewCacheRepository(cfg config.CheckerConfig, logger *zap.Logger) domainRepo.CacheRepository {
	ttl := cfg.GetCacheTTL()
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	c := cache.New(ttl, 2*ttl)
	logger.Info(
		"Initialized go-cache for RPC health results",
		zap.Duration("defaultExpiration", ttl),
	)

	return &CacheRepository{
		cache:  c,
		logger: logger.Named("MemoryCacheStorage"),
		ttl:    ttl,
	}
}

// GetCheckedRPCs retrieves cached checked RPCs for a network, returning found status.
func (r *CacheRepository) GetCheckedRPCs(_ context.Context, networkID string) ([]entity.RPCDetail, bool, error) {
	key := checkedRPCsKeyPrefix + networkID
	if x, found := r.cache.Get(key); found {
		if rpcs, ok := x.([]entity.RPCDetail); ok {
			r.logger.Debug("Memory cache hit", zap.String("key", key))
			return append([]entity.RPCDetail(nil), rpcs...), true, nil
		}
		r.logger.Warn(
			"Memory cache data type mismatch for key",
			zap.String("key", key),
			zap.String("type", fmt.Sprintf("%T", x)),
		)
	}
	r.logger.Debug("Memory cache miss", zap.String("key", key))
	return nil, false, nil
}

// SetCheckedRPCs caches the checked RPCs for a network. A non-positive ttl uses the configured default.
func (r *CacheRepository) SetCheckedRPCs(
	_ context.Context,
	networkID string,
	rpcs []entity.RPCDetail,
	ttl time.Duration,
) error {
	key := checkedRPCsKeyPrefix + networkID
	if ttl <= 0 {
		ttl = r.ttl
	}
	r.cache.Set(key, append([]entity.RPCDetail(nil), rpcs...), ttl)
	r.logger.Debug("Memory cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}
