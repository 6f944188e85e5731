package port

import (
	"context"

	"subname-minter/internal/domain/entity"
)

// NetworkService exposes the chain registry and the health of each network's RPC endpoints.
type NetworkService interface {
	// Networks lists every network in the registry.
	Networks() []entity.NetworkContext

	// CheckedRPCs returns the health of every RPC endpoint of a network, working endpoints first.
	CheckedRPCs(ctx context.Context, networkID string) ([]entity.RPCDetail, error)

	// PickRPC returns the fastest working endpoint of a network.
	PickRPC(ctx context.Context, networkID string) (entity.RPCURL, error)
}
