package application

import (
	"context"
	"fmt"
	"math/big"

	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	domainService "subname-minter/internal/domain/service"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.MintBackend = (*OffchainBackend)(nil)

// Records attached to every off-chain subname.
const (
	TextKeyName    = "name"
	TextKeyURL     = "url"
	MetadataSender = "sender"
	DefaultTextURL = "https://example.com"
)

// OffchainBackend issues gasless subnames through the hosted directory. It has no parameter
// bundle and no transaction: Submit creates the subname directly.
type OffchainBackend struct {
	directory  domainService.SubnameDirectory
	profileURL string
	logger     *zap.Logger
}

// NewOffchainBackend creates an off-chain backend publishing profileURL as the url record.
func NewOffchainBackend(directory domainService.SubnameDirectory, profileURL string, logger *zap.Logger) *OffchainBackend {
	if profileURL == "" {
		profileURL = DefaultTextURL
	}
	return &OffchainBackend{
		directory:  directory,
		profileURL: profileURL,
		logger:     logger.Named("OffchainBackend"),
	}
}

func (b *OffchainBackend) Kind() string { return config.BackendOffchain }

func (b *OffchainBackend) RequiresSigner() bool { return false }

func (b *OffchainBackend) CheckAvailability(ctx context.Context, candidate entity.NameCandidate) (bool, error) {
	return b.directory.IsAvailable(ctx, candidate.FullName())
}

// MintParameters returns a zero-priced quote: off-chain issuance is free and unsigned.
func (b *OffchainBackend) MintParameters(_ context.Context, req entity.MintRequest) (*entity.MintQuote, error) {
	return &entity.MintQuote{
		Params: entity.MintParameters{
			Label: req.Candidate.Label,
			Owner: req.Owner,
			Price: new(big.Int),
			Fee:   new(big.Int),
		},
	}, nil
}

// Assemble always returns ErrNoTransaction.
func (b *OffchainBackend) Assemble(*entity.MintQuote, entity.NetworkContext) (*entity.MintTransaction, error) {
	return nil, domainService.ErrNoTransaction
}

// Submit creates the subname with its name and url records, the owner's ETH address and the
// minter recorded as sender.
func (b *OffchainBackend) Submit(
	ctx context.Context,
	req entity.MintRequest,
	_ *entity.MintTransaction,
	_ domainService.Wallet,
	onStatus domainService.StatusFunc,
) (entity.MintOutcome, error) {
	if onStatus == nil {
		onStatus = func(entity.MintStatus) {}
	}
	fullName := req.Candidate.FullName()
	outcome := entity.MintOutcome{Name: fullName, Backend: b.Kind(), Status: entity.StatusIdle}

	onStatus(entity.StatusSubmitting)
	record, err := b.directory.CreateSubname(ctx, entity.CreateSubnameRequest{
		Label:  req.Candidate.Label,
		Parent: req.Candidate.Parent,
		Owner:  req.Owner,
		Texts: map[string]string{
			TextKeyName: req.Candidate.Label,
			TextKeyURL:  b.profileURL,
		},
		Addresses: map[int]string{
			entity.CoinTypeETH: req.Owner.Hex(),
		},
		Metadata: map[string]string{
			MetadataSender: req.Minter.Hex(),
		},
	})
	if err != nil {
		onStatus(entity.StatusSubmissionFailed)
		outcome.Status = entity.StatusSubmissionFailed
		if domain.Classify(err) == domain.KindInternal {
			err = fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
		}
		return outcome, err
	}

	onStatus(entity.StatusSubmitted)
	outcome.Status = entity.StatusSubmitted
	outcome.Name = record.FullName
	b.logger.Info("Off-chain subname issued", zap.String("name", record.FullName), zap.String("owner", req.Owner.Hex()))
	return outcome, nil
}
