package registry

import (
	"fmt"

	dto "subname-minter/internal/adapter/storage/registry/dto"
	"subname-minter/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// mapEnvironment converts a raw environment label to its domain counterpart.
func mapEnvironment(raw dto.EnvironmentRaw) (entity.Environment, error) {
	switch raw {
	case dto.EnvironmentMainnetRaw:
		return entity.EnvironmentMainnet, nil
	case dto.EnvironmentTestnetRaw:
		return entity.EnvironmentTestnet, nil
	default:
		return "", fmt.Errorf("unknown environment %q", raw)
	}
}

// parseAddress accepts an empty string as the zero address and rejects malformed hex.
func parseAddress(field, raw string) (common.Address, error) {
	if raw == "" {
		return common.Address{}, nil
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%s address %q is not a valid hex address", field, raw)
	}
	return common.HexToAddress(raw), nil
}

// toDomainNetwork converts one raw registry entry into a NetworkContext.
// Invalid RPC URLs are skipped; invalid contract addresses fail the whole entry.
func toDomainNetwork(raw dto.NetworkRaw, logger *zap.Logger) (entity.NetworkContext, error) {
	if raw.Identifier == "" {
		return entity.NetworkContext{}, fmt.Errorf("network %q has no identifier", raw.Name)
	}
	if raw.ChainID == 0 {
		return entity.NetworkContext{}, fmt.Errorf("network %s has no chain id", raw.Identifier)
	}

	env, err := mapEnvironment(raw.Environment)
	if err != nil {
		return entity.NetworkContext{}, fmt.Errorf("network %s: %w", raw.Identifier, err)
	}

	registry, err := parseAddress("registry", raw.Contracts.Registry)
	if err != nil {
		return entity.NetworkContext{}, fmt.Errorf("network %s: %w", raw.Identifier, err)
	}
	resolver, err := parseAddress("resolver", raw.Contracts.Resolver)
	if err != nil {
		return entity.NetworkContext{}, fmt.Errorf("network %s: %w", raw.Identifier, err)
	}
	controller, err := parseAddress("mintController", raw.Contracts.MintController)
	if err != nil {
		return entity.NetworkContext{}, fmt.Errorf("network %s: %w", raw.Identifier, err)
	}

	rpcs := make([]entity.RPCURL, 0, len(raw.RPC))
	for _, rpcStr := range raw.RPC {
		rpcURL, err := entity.NewRPCURL(rpcStr)
		if err != nil {
			if logger != nil {
				logger.Warn("Skipping invalid RPC URL during mapping",
					zap.String("rawUrl", rpcStr),
					zap.String("network", raw.Identifier),
					zap.Error(err))
			}
			continue
		}
		rpcs = append(rpcs, rpcURL)
	}

	return entity.NetworkContext{
		ID:          raw.Identifier,
		Name:        raw.Name,
		ChainID:     raw.ChainID,
		Environment: env,
		RPC:         rpcs,
		Contracts: entity.Contracts{
			Registry:       registry,
			Resolver:       resolver,
			MintController: controller,
		},
		ExplorerURL: raw.BlockExplorerURL,
	}, nil
}
