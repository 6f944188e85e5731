package ethereum

import (
	"context"
	"fmt"

	"subname-minter/internal/domain/entity"
	domainService "subname-minter/internal/domain/service"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.ChainBackend = (*ethclient.Client)(nil)

// Dial connects to rpcURL and verifies that it serves network's chain.
func Dial(ctx context.Context, rpcURL entity.RPCURL, network entity.NetworkContext, logger *zap.Logger) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL.String())
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", rpcURL, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to read chain id from %s: %w", rpcURL, err)
	}
	if !chainID.IsUint64() || chainID.Uint64() != network.ChainID {
		client.Close()
		return nil, fmt.Errorf("rpc %s serves chain %s, expected %d (%s)", rpcURL, chainID, network.ChainID, network.ID)
	}

	logger.Named("EthereumClient").Info("Connected to chain",
		zap.String("network", network.ID),
		zap.String("rpc", rpcURL.String()),
		zap.Uint64("chainId", network.ChainID),
	)
	return client, nil
}
