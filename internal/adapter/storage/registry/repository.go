package registry

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	dto "subname-minter/internal/adapter/storage/registry/dto"
	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	domainRepo "subname-minter/internal/domain/repository"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed networks.yaml
var embeddedNetworks []byte

// Compile-time check
var _ domainRepo.NetworkRepository = (*Repository)(nil)

// Repository is the static chain registry. It is filled once by the constructor and never written again.
type Repository struct {
	networks map[string]entity.NetworkContext
	ordered  []entity.NetworkContext
}

// NewRepository loads the registry from cfg.RegistryFile, or from the embedded defaults when it is empty.
func NewRepository(cfg config.NetworkConfig, logger *zap.Logger) (domainRepo.NetworkRepository, error) {
	logger = logger.Named("NetworkRegistry")

	data := embeddedNetworks
	source := "embedded"
	if cfg.RegistryFile != "" {
		fileData, err := os.ReadFile(cfg.RegistryFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read network registry %s: %w", cfg.RegistryFile, err)
		}
		data = fileData
		source = cfg.RegistryFile
	}

	repo, err := Parse(data, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load network registry from %s: %w", source, err)
	}

	if cfg.Active != "" {
		if _, err := repo.Get(cfg.Active); err != nil {
			return nil, err
		}
	}

	logger.Info("Network registry loaded",
		zap.String("source", source),
		zap.Int("count", len(repo.ordered)),
	)
	return repo, nil
}

// Parse decodes a registry document.
func Parse(data []byte, logger *zap.Logger) (*Repository, error) {
	var raw dto.FileRaw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse network registry: %w", err)
	}
	if len(raw.Networks) == 0 {
		return nil, fmt.Errorf("network registry contains no networks")
	}

	repo := &Repository{networks: make(map[string]entity.NetworkContext, len(raw.Networks))}
	for _, n := range raw.Networks {
		network, err := toDomainNetwork(n, logger)
		if err != nil {
			return nil, err
		}
		if _, dup := repo.networks[network.ID]; dup {
			return nil, fmt.Errorf("duplicate network identifier %q", network.ID)
		}
		repo.networks[network.ID] = network
		repo.ordered = append(repo.ordered, network)
	}
	sort.Slice(repo.ordered, func(i, j int) bool { return repo.ordered[i].ID < repo.ordered[j].ID })

	return repo, nil
}

// Get returns the network with the given identifier.
func (r *Repository) Get(id string) (entity.NetworkContext, error) {
	network, ok := r.networks[id]
	if !ok {
		return entity.NetworkContext{}, fmt.Errorf("%w: %q", domain.ErrNetworkNotFound, id)
	}
	return copyNetwork(network), nil
}

// List returns every known network ordered by identifier.
func (r *Repository) List() []entity.NetworkContext {
	out := make([]entity.NetworkContext, len(r.ordered))
	for i, n := range r.ordered {
		out[i] = copyNetwork(n)
	}
	return out
}

// copyNetwork detaches the RPC slice so callers cannot mutate the registry.
func copyNetwork(n entity.NetworkContext) entity.NetworkContext {
	n.RPC = append([]entity.RPCURL(nil), n.RPC...)
	return n
}
