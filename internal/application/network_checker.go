package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"subname-minter/internal/application/port"
	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	domainRepo "subname-minter/internal/domain/repository"
	domainService "subname-minter/internal/domain/service"

	"go.uber.org/zap"
)

// Compile-time check
var _ port.NetworkService = (*NetworkChecker)(nil)

// NetworkChecker checks RPC endpoints of registry networks and caches the results.
type NetworkChecker struct {
	networks   domainRepo.NetworkRepository
	cacheRepo  domainRepo.CacheRepository
	rpcChecker domainService.RPCChecker
	logger     *zap.Logger
	cfg        config.CheckerConfig
	isChecking *atomic.Bool
}

// NewNetworkChecker creates the network checker. Call Run to keep the active network's
// health fresh in the background.
func NewNetworkChecker(
	networks domainRepo.NetworkRepository,
	cacheRepo domainRepo.CacheRepository,
	rpcChecker domainService.RPCChecker,
	cfg config.CheckerConfig,
	logger *zap.Logger,
) *NetworkChecker {
	return &NetworkChecker{
		networks:   networks,
		cacheRepo:  cacheRepo,
		rpcChecker: rpcChecker,
		logger:     logger.Named("NetworkChecker"),
		cfg:        cfg,
		isChecking: new(atomic.Bool),
	}
}

// Networks lists the registry.
func (s *NetworkChecker) Networks() []entity.NetworkContext {
	return s.networks.List()
}

// CheckedRPCs returns cached health for networkID, checking the endpoints on a cache miss.
func (s *NetworkChecker) CheckedRPCs(ctx context.Context, networkID string) ([]entity.RPCDetail, error) {
	network, err := s.networks.Get(networkID)
	if err != nil {
		return nil, err
	}

	cached, found, err := s.cacheRepo.GetCheckedRPCs(ctx, networkID)
	if err != nil {
		s.logger.Warn("Cache error when getting checked RPCs", zap.String("network", networkID), zap.Error(err))
	}
	if found {
		s.logger.Debug("Cache hit for checked RPCs", zap.String("network", networkID))
		return withWorking(cached, networkID)
	}

	details := s.refresh(ctx, network)
	return withWorking(details, networkID)
}

// PickRPC returns the lowest-latency working endpoint of networkID.
func (s *NetworkChecker) PickRPC(ctx context.Context, networkID string) (entity.RPCURL, error) {
	details, err := s.CheckedRPCs(ctx, networkID)
	if err != nil {
		return "", err
	}
	return details[0].URL, nil
}

// Run refreshes the network's RPC health every CheckInterval until ctx is done.
func (s *NetworkChecker) Run(ctx context.Context, networkID string) {
	interval := s.cfg.GetCheckInterval()
	if interval <= 0 {
		s.logger.Info("Background checker disabled (interval <= 0)")
		return
	}
	network, err := s.networks.Get(networkID)
	if err != nil {
		s.logger.Error("Background checker cannot start", zap.Error(err))
		return
	}

	s.logger.Info("Starting background checker", zap.String("network", networkID), zap.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !s.isChecking.CompareAndSwap(false, true) {
				s.logger.Debug("Background checker tick: check already in progress")
				continue
			}
			s.refresh(ctx, network)
			s.isChecking.Store(false)
		case <-ctx.Done():
			s.logger.Info("Background checker stopping due to context cancellation")
			return
		}
	}
}

// refresh checks every endpoint of network and caches the sorted result.
func (s *NetworkChecker) refresh(ctx context.Context, network entity.NetworkContext) []entity.RPCDetail {
	details := s.checkRPCs(ctx, network)
	sortDetails(details)

	if ctx.Err() != nil {
		s.logger.Warn("Context cancelled before caching RPC health", zap.String("network", network.ID))
		return details
	}
	if err := s.cacheRepo.SetCheckedRPCs(ctx, network.ID, details, s.cfg.GetCacheTTL()); err != nil {
		s.logger.Error("Failed to cache checked RPCs", zap.String("network", network.ID), zap.Error(err))
	}
	return details
}

// checkRPCs performs parallel RPC checks for a network and returns their details in input order.
func (s *NetworkChecker) checkRPCs(ctx context.Context, network entity.NetworkContext) []entity.RPCDetail {
	rpcs := network.RPC
	if len(rpcs) == 0 {
		return nil
	}

	details := make([]entity.RPCDetail, len(rpcs))
	var wg sync.WaitGroup

	numWorkers := s.cfg.MaxWorkers
	if numWorkers <= 0 {
		numWorkers = 10
	}
	if len(rpcs) < numWorkers {
		numWorkers = len(rpcs)
	}

	timeout := s.cfg.GetTimeout()
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	jobs := make(chan int, len(rpcs))
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobs {
				url := rpcs[i]
				detail := entity.RPCDetail{URL: url, Protocol: url.Protocol()}

				checkCtx, cancel := context.WithTimeout(ctx, timeout)
				isWorking, latency, err := s.rpcChecker.CheckRPC(checkCtx, url, network.ChainID)
				cancel()

				if err != nil {
					s.logger.Debug("RPC check failed",
						zap.Int("workerID", workerID), zap.String("rpc", url.String()), zap.Error(err))
					detail.Error = err.Error()
				} else if isWorking {
					latencyMs := latency.Milliseconds()
					detail.IsWorking = true
					detail.LatencyMs = &latencyMs
				}
				details[i] = detail
			}
		}(w)
	}

	for i := range rpcs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	working := 0
	for _, d := range details {
		if d.IsWorking {
			working++
		}
	}
	s.logger.Info("Finished checking RPCs",
		zap.String("network", network.ID),
		zap.Int("total", len(details)),
		zap.Int("working", working),
	)
	return details
}

// sortDetails orders working endpoints first, fastest first; the rest keep their order.
func sortDetails(details []entity.RPCDetail) {
	sort.SliceStable(details, func(i, j int) bool {
		a, b := details[i], details[j]
		if a.IsWorking != b.IsWorking {
			return a.IsWorking
		}
		if a.IsWorking && a.LatencyMs != nil && b.LatencyMs != nil {
			return *a.LatencyMs < *b.LatencyMs
		}
		return false
	})
}

func withWorking(details []entity.RPCDetail, networkID string) ([]entity.RPCDetail, error) {
	if len(details) == 0 || !details[0].IsWorking {
		return details, fmt.Errorf("%w: %s", domain.ErrNoRPCsAvailable, networkID)
	}
	return details, nil
}
