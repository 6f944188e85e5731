package service

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"subname-minter/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . AvailabilityResolver,MintParameterProvider,ChainBackend,Wallet,SubnameDirectory,MintBackend

// AvailabilityResolver decides whether a candidate's full name is unclaimed.
type AvailabilityResolver interface {
	IsAvailable(ctx context.Context, candidate entity.NameCandidate) (bool, error)
}

// MintParameterProvider obtains a signed parameter bundle from the minting authority.
type MintParameterProvider interface {
	MintParameters(ctx context.Context, req entity.MintRequest) (*entity.MintQuote, error)
}

// ChainBackend is the subset of an Ethereum client the executor needs. *ethclient.Client satisfies it.
type ChainBackend interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Wallet is a connected account able to sign transactions for one chain.
type Wallet interface {
	Address() common.Address
	ChainID() uint64
	SignTx(tx *types.Transaction) (*types.Transaction, error)
}

// SubnameDirectory is the hosted off-chain subname directory.
type SubnameDirectory interface {
	IsAvailable(ctx context.Context, fullName string) (bool, error)
	CreateSubname(ctx context.Context, req entity.CreateSubnameRequest) (*entity.SubnameRecord, error)
	// ListByOwner pages through the subnames of parent owned by owner.
	ListByOwner(ctx context.Context, parent string, owner common.Address, page, size int) (entity.SubnamePage, error)
	TextRecord(ctx context.Context, fullName, key string) (string, error)
}

// ErrNoTransaction is returned by Assemble when a backend issues names without a transaction.
// Submit is then called with a nil transaction.
var ErrNoTransaction = errors.New("backend does not mint through a transaction")

// StatusFunc observes mint status transitions.
type StatusFunc func(status entity.MintStatus)

// MintBackend is one way of minting: it checks availability, obtains parameters,
// assembles the call and submits it.
type MintBackend interface {
	Kind() string
	// RequiresSigner reports whether Submit needs a wallet able to sign transactions.
	RequiresSigner() bool
	CheckAvailability(ctx context.Context, candidate entity.NameCandidate) (bool, error)
	MintParameters(ctx context.Context, req entity.MintRequest) (*entity.MintQuote, error)
	// Assemble returns ErrNoTransaction for backends that do not mint through a transaction.
	Assemble(quote *entity.MintQuote, network entity.NetworkContext) (*entity.MintTransaction, error)
	Submit(ctx context.Context, req entity.MintRequest, tx *entity.MintTransaction, wallet Wallet, onStatus StatusFunc) (entity.MintOutcome, error)
}
