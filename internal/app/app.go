// Package app wires the adapters and the application service together for the entry points.
package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"subname-minter/internal/adapter/authority"
	"subname-minter/internal/adapter/directory"
	"subname-minter/internal/adapter/ens"
	"subname-minter/internal/adapter/ethereum"
	"subname-minter/internal/adapter/metrics"
	"subname-minter/internal/adapter/mintsdk"
	"subname-minter/internal/adapter/rpc"
	"subname-minter/internal/adapter/storage/chainlist"
	"subname-minter/internal/adapter/storage/memory"
	"subname-minter/internal/adapter/storage/registry"
	"subname-minter/internal/application"
	"subname-minter/internal/config"
	"subname-minter/internal/domain/entity"
	domainRepo "subname-minter/internal/domain/repository"
	domainService "subname-minter/internal/domain/service"
)

// App is a fully wired minter for the configured network and backend.
type App struct {
	Config   *config.Config
	Network  entity.NetworkContext
	Networks *application.NetworkChecker
	Service  *application.MintService
	Registry *prometheus.Registry

	closers []func()
}

// New builds every dependency in order: registry, RPC health, chain client, backend,
// wallet, sessions, metrics and finally the service.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Registry: prometheus.NewRegistry()}

	networkRepo, err := NewNetworkRepository(ctx, cfg.Network, logger)
	if err != nil {
		return nil, err
	}
	network, err := networkRepo.Get(cfg.Network.Active)
	if err != nil {
		return nil, err
	}
	a.Network = network

	cacheRepo := memory.NewCacheRepository(cfg.Checker, logger)
	a.Networks = application.NewNetworkChecker(networkRepo, cacheRepo, rpc.NewChecker(logger), cfg.Checker, logger)

	dir := directory.NewClient(cfg.Directory, logger)

	var signer domainService.Wallet
	if cfg.Wallet.PrivateKeyFile != "" {
		wallet, err := ethereum.LoadWallet(cfg.Wallet.PrivateKeyFile, network.ChainID)
		if err != nil {
			return nil, err
		}
		logger.Info("Signer loaded", zap.String("address", wallet.Address().Hex()))
		signer = wallet
	}

	backend, err := a.newBackend(ctx, network, dir, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewRecorder(a.Registry)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	a.Service = application.NewMintService(application.MintServiceParams{
		Sessions:          memory.NewSessionRepository(cfg.Session, logger),
		Networks:          a.Networks,
		Backend:           backend,
		Directory:         dir,
		Signer:            signer,
		Network:           network,
		Parent:            cfg.Parent.Name,
		ExpiryYears:       cfg.Backend.ExpiryYears,
		StrictSuggestions: cfg.Backend.StrictSuggestions,
		DirectoryPageSize: cfg.Directory.PageSize,
		Metrics:           recorder,
		Logger:            logger,
	})

	logger.Info("Minter ready",
		zap.String("network", network.ID),
		zap.String("backend", backend.Kind()),
		zap.String("parent", cfg.Parent.Name),
		zap.Bool("signer", signer != nil),
	)
	return a, nil
}

// NewNetworkRepository loads the chain registry, extended with chainlist endpoints when
// cfg.ChainlistURL is set.
func NewNetworkRepository(ctx context.Context, cfg config.NetworkConfig, logger *zap.Logger) (domainRepo.NetworkRepository, error) {
	repo, err := registry.NewRepository(cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.ChainlistURL == "" {
		return repo, nil
	}
	return chainlist.NewEnrichedRepository(ctx, repo, chainlist.NewSource(cfg.ChainlistURL, logger), logger), nil
}

// newBackend selects the mint backend. On-chain backends dial the fastest working RPC.
func (a *App) newBackend(
	ctx context.Context,
	network entity.NetworkContext,
	dir domainService.SubnameDirectory,
	logger *zap.Logger,
) (domainService.MintBackend, error) {
	cfg := a.Config
	if cfg.Backend.Kind == config.BackendOffchain {
		return application.NewOffchainBackend(dir, cfg.Directory.ProfileURL, logger), nil
	}

	rpcURL, err := a.Networks.PickRPC(ctx, network.ID)
	if err != nil {
		return nil, err
	}
	client, err := ethereum.Dial(ctx, rpcURL, network, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)

	var provider domainService.MintParameterProvider
	if cfg.Backend.Kind == config.BackendSDK {
		provider = mintsdk.New(cfg.Authority, logger)
	} else {
		provider = authority.NewClient(cfg.Authority, logger)
	}

	return application.NewOnchainBackend(
		cfg.Backend.Kind,
		ens.NewResolver(client, network, logger),
		provider,
		application.NewMintExecutor(client, logger),
		cfg.Backend.SourceTag,
		logger,
	), nil
}

// Close releases the chain connection.
func (a *App) Close() {
	for _, c := range a.closers {
		c()
	}
	a.closers = nil
}
