package ens

import (
	"context"
	"fmt"
	"strings"

	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	domainService "subname-minter/internal/domain/service"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.AvailabilityResolver = (*Resolver)(nil)

const registryOwnerABI = `[{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"owner",` +
	`"outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}]`

var registryABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(registryOwnerABI))
	if err != nil {
		panic(fmt.Sprintf("invalid ENS registry ABI: %v", err))
	}
	return parsed
}()

// Resolver checks availability by reading owner(namehash(name)) from the ENS registry.
type Resolver struct {
	backend  domainService.ChainBackend
	registry common.Address
	logger   *zap.Logger
}

// NewResolver creates an on-chain availability resolver for the registry deployed on network.
func NewResolver(backend domainService.ChainBackend, network entity.NetworkContext, logger *zap.Logger) domainService.AvailabilityResolver {
	return &Resolver{
		backend:  backend,
		registry: network.Contracts.Registry,
		logger:   logger.Named("ENSResolver"),
	}
}

// IsAvailable reports whether the candidate's full name has no owner in the registry.
func (r *Resolver) IsAvailable(ctx context.Context, candidate entity.NameCandidate) (bool, error) {
	owner, err := r.Owner(ctx, candidate.FullName())
	if err != nil {
		return false, err
	}
	return owner == (common.Address{}), nil
}

// Owner returns the registry owner of name.
func (r *Resolver) Owner(ctx context.Context, name string) (common.Address, error) {
	node, err := goens.NameHash(name)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: cannot hash %q: %v", domain.ErrInvalidInput, name, err)
	}

	data, err := registryABI.Pack("owner", node)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: failed to pack owner call: %v", domain.ErrAvailabilityUnknown, err)
	}

	registry := r.registry
	out, err := r.backend.CallContract(ctx, ethereum.CallMsg{To: &registry, Data: data}, nil)
	if err != nil {
		r.logger.Warn("Registry owner lookup failed", zap.String("name", name), zap.Error(err))
		return common.Address{}, fmt.Errorf("%w: owner lookup for %s failed: %v", domain.ErrAvailabilityUnknown, name, err)
	}

	values, err := registryABI.Unpack("owner", out)
	if err != nil || len(values) != 1 {
		return common.Address{}, fmt.Errorf("%w: malformed owner result for %s: %v", domain.ErrAvailabilityUnknown, name, err)
	}
	owner, ok := values[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("%w: unexpected owner type %T", domain.ErrAvailabilityUnknown, values[0])
	}

	r.logger.Debug("Registry owner resolved",
		zap.String("name", name),
		zap.String("node", common.Hash(node).Hex()),
		zap.String("owner", owner.Hex()),
	)
	return owner, nil
}
