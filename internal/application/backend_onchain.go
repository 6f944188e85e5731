package application

import (
	"context"

	"subname-minter/internal/domain/entity"
	"subname-minter/internal/domain/mint"
	domainService "subname-minter/internal/domain/service"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.MintBackend = (*OnchainBackend)(nil)

// OnchainBackend mints through the mint controller contract. The parameter provider decides
// whether this is the direct or the SDK flavour.
type OnchainBackend struct {
	kind      string
	resolver  domainService.AvailabilityResolver
	provider  domainService.MintParameterProvider
	executor  *MintExecutor
	sourceTag string
	logger    *zap.Logger
}

// NewOnchainBackend creates an on-chain backend reported under kind.
func NewOnchainBackend(
	kind string,
	resolver domainService.AvailabilityResolver,
	provider domainService.MintParameterProvider,
	executor *MintExecutor,
	sourceTag string,
	logger *zap.Logger,
) *OnchainBackend {
	if sourceTag == "" {
		sourceTag = mint.DefaultSourceTag
	}
	return &OnchainBackend{
		kind:      kind,
		resolver:  resolver,
		provider:  provider,
		executor:  executor,
		sourceTag: sourceTag,
		logger:    logger.Named("OnchainBackend"),
	}
}

func (b *OnchainBackend) Kind() string { return b.kind }

func (b *OnchainBackend) RequiresSigner() bool { return true }

func (b *OnchainBackend) CheckAvailability(ctx context.Context, candidate entity.NameCandidate) (bool, error) {
	return b.resolver.IsAvailable(ctx, candidate)
}

func (b *OnchainBackend) MintParameters(ctx context.Context, req entity.MintRequest) (*entity.MintQuote, error) {
	return b.provider.MintParameters(ctx, req)
}

func (b *OnchainBackend) Assemble(quote *entity.MintQuote, network entity.NetworkContext) (*entity.MintTransaction, error) {
	return mint.Assemble(quote, network.Contracts.MintController, b.sourceTag)
}

// Submit simulates and broadcasts tx with wallet.
func (b *OnchainBackend) Submit(
	ctx context.Context,
	req entity.MintRequest,
	tx *entity.MintTransaction,
	wallet domainService.Wallet,
	onStatus domainService.StatusFunc,
) (entity.MintOutcome, error) {
	outcome := entity.MintOutcome{
		Name:    req.Candidate.FullName(),
		Backend: b.kind,
	}

	exec, err := b.executor.Execute(ctx, wallet, req.Network, tx, onStatus)
	outcome.Status = exec.Status
	if err != nil {
		return outcome, err
	}

	outcome.TxHash = exec.TxHash.Hex()
	outcome.ExplorerURL = req.Network.TxURL(outcome.TxHash)
	return outcome, nil
}
