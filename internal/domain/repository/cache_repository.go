package repository

import (
	"context"
	"time"

	"subname-minter/internal/domain/entity"
)

// CacheRepository caches RPC health check results per network.
type CacheRepository interface {
	// GetCheckedRPCs retrieves the cached RPC details for a network, returning found status.
	GetCheckedRPCs(ctx context.Context, networkID string) ([]entity.RPCDetail, bool, error)

	// SetCheckedRPCs stores the RPC details for a network with a specified TTL.
	SetCheckedRPCs(ctx context.Context, networkID string, rpcs []entity.RPCDetail, ttl time.Duration) error
}
