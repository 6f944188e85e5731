package chainlist

import (
	"context"

	"subname-minter/internal/domain/entity"
	domainRepo "subname-minter/internal/domain/repository"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.NetworkRepository = (*EnrichedRepository)(nil)

// RPCSource lists public RPC endpoints per chain id.
type RPCSource interface {
	RPCs(ctx context.Context, chainIDs []uint64) (map[uint64][]entity.RPCURL, error)
}

// EnrichedRepository is a network registry whose RPC lists are extended, once at construction,
// with endpoints discovered from an RPCSource. Configured endpoints keep their place at the front.
type EnrichedRepository struct {
	base  domainRepo.NetworkRepository
	extra map[uint64][]entity.RPCURL
}

// NewEnrichedRepository queries source for every network in base. A failing source leaves
// the registry as configured.
func NewEnrichedRepository(
	ctx context.Context,
	base domainRepo.NetworkRepository,
	source RPCSource,
	logger *zap.Logger,
) *EnrichedRepository {
	logger = logger.Named("ChainlistEnricher")
	repo := &EnrichedRepository{base: base, extra: map[uint64][]entity.RPCURL{}}

	networks := base.List()
	chainIDs := make([]uint64, 0, len(networks))
	for _, n := range networks {
		chainIDs = append(chainIDs, n.ChainID)
	}

	discovered, err := source.RPCs(ctx, chainIDs)
	if err != nil {
		logger.Warn("RPC discovery failed, using configured endpoints only", zap.Error(err))
		return repo
	}

	for _, n := range networks {
		known := make(map[entity.RPCURL]struct{}, len(n.RPC))
		for _, u := range n.RPC {
			known[u] = struct{}{}
		}
		for _, u := range discovered[n.ChainID] {
			if _, dup := known[u]; dup {
				continue
			}
			known[u] = struct{}{}
			repo.extra[n.ChainID] = append(repo.extra[n.ChainID], u)
		}
		logger.Info("Discovered RPC endpoints",
			zap.String("network", n.ID), zap.Int("added", len(repo.extra[n.ChainID])))
	}
	return repo
}

func (r *EnrichedRepository) Get(id string) (entity.NetworkContext, error) {
	n, err := r.base.Get(id)
	if err != nil {
		return entity.NetworkContext{}, err
	}
	return r.enrich(n), nil
}

func (r *EnrichedRepository) List() []entity.NetworkContext {
	networks := r.base.List()
	for i := range networks {
		networks[i] = r.enrich(networks[i])
	}
	return networks
}

func (r *EnrichedRepository) enrich(n entity.NetworkContext) entity.NetworkContext {
	extra := r.extra[n.ChainID]
	if len(extra) == 0 {
		return n
	}
	rpcs := make([]entity.RPCURL, 0, len(n.RPC)+len(extra))
	rpcs = append(rpcs, n.RPC...)
	n.RPC = append(rpcs, extra...)
	return n
}
