package service

import (
	"context"
	"time"

	"subname-minter/internal/domain/entity"
)

// RPCChecker probes an RPC endpoint and verifies it serves the expected chain.
type RPCChecker interface {
	CheckRPC(ctx context.Context, rpcURL entity.RPCURL, chainID uint64) (bool, time.Duration, error)
}
