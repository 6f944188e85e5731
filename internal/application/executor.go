package application

import (
	"context"
	"fmt"
	"math/big"

	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	domainService "subname-minter/internal/domain/service"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// MintExecutor simulates a mint call and, only when the simulation succeeds, signs and broadcasts
// the very same call. It does not wait for the transaction to be mined.
type MintExecutor struct {
	chain  domainService.ChainBackend
	logger *zap.Logger
}

// NewMintExecutor creates an executor bound to one chain client.
func NewMintExecutor(chain domainService.ChainBackend, logger *zap.Logger) *MintExecutor {
	return &MintExecutor{
		chain:  chain,
		logger: logger.Named("MintExecutor"),
	}
}

// Execution is the terminal state of one Execute call.
type Execution struct {
	Status entity.MintStatus
	TxHash common.Hash
}

// Execute runs idle -> simulating -> simulated -> submitting -> submitted, stopping at
// simulation_failed or submission_failed. onStatus sees every transition; it may be nil.
func (e *MintExecutor) Execute(
	ctx context.Context,
	wallet domainService.Wallet,
	network entity.NetworkContext,
	tx *entity.MintTransaction,
	onStatus domainService.StatusFunc,
) (Execution, error) {
	if onStatus == nil {
		onStatus = func(entity.MintStatus) {}
	}
	if err := CheckWallet(wallet, network); err != nil {
		return Execution{Status: entity.StatusIdle}, err
	}
	if tx == nil || tx.Value == nil {
		return Execution{Status: entity.StatusIdle}, fmt.Errorf("%w: no assembled transaction", domain.ErrSimulationReverted)
	}

	to := tx.To
	msg := ethereum.CallMsg{
		From:  wallet.Address(),
		To:    &to,
		Value: new(big.Int).Set(tx.Value),
		Data:  tx.Data,
	}

	onStatus(entity.StatusSimulating)
	if _, err := e.chain.CallContract(ctx, msg, nil); err != nil {
		e.logger.Info("Mint simulation reverted", zap.String("to", to.Hex()), zap.Error(err))
		onStatus(entity.StatusSimulationFailed)
		return Execution{Status: entity.StatusSimulationFailed}, fmt.Errorf("%w: %v", domain.ErrSimulationReverted, err)
	}
	onStatus(entity.StatusSimulated)

	onStatus(entity.StatusSubmitting)
	hash, err := e.submit(ctx, wallet, network, msg)
	if err != nil {
		e.logger.Warn("Mint submission failed", zap.String("to", to.Hex()), zap.Error(err))
		onStatus(entity.StatusSubmissionFailed)
		return Execution{Status: entity.StatusSubmissionFailed}, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}
	onStatus(entity.StatusSubmitted)

	e.logger.Info("Mint transaction broadcast",
		zap.String("txHash", hash.Hex()),
		zap.String("from", msg.From.Hex()),
		zap.String("value", msg.Value.String()),
	)
	return Execution{Status: entity.StatusSubmitted, TxHash: hash}, nil
}

// submit builds an EIP-1559 transaction from the simulated call message, signs and sends it.
func (e *MintExecutor) submit(
	ctx context.Context,
	wallet domainService.Wallet,
	network entity.NetworkContext,
	msg ethereum.CallMsg,
) (common.Hash, error) {
	gas, err := e.chain.EstimateGas(ctx, msg)
	if err != nil {
		return common.Hash{}, fmt.Errorf("estimate gas: %w", err)
	}
	nonce, err := e.chain.PendingNonceAt(ctx, msg.From)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pending nonce: %w", err)
	}
	tip, err := e.chain.SuggestGasTipCap(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("suggest gas tip: %w", err)
	}
	head, err := e.chain.HeaderByNumber(ctx, nil)
	if err != nil {
		return common.Hash{}, fmt.Errorf("latest header: %w", err)
	}

	feeCap := new(big.Int).Set(tip)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}

	unsigned := types.NewTx(&types.DynamicFeeTx{
		ChainID:   new(big.Int).SetUint64(network.ChainID),
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        msg.To,
		Value:     msg.Value,
		Data:      msg.Data,
	})

	signed, err := wallet.SignTx(unsigned)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign: %w", err)
	}
	if err := e.chain.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("send: %w", err)
	}
	return signed.Hash(), nil
}

// CheckWallet verifies a wallet is present and signs for network.
func CheckWallet(wallet domainService.Wallet, network entity.NetworkContext) error {
	if wallet == nil || wallet.Address() == (common.Address{}) {
		return fmt.Errorf("%w: no wallet connected", domain.ErrWalletNotReady)
	}
	if wallet.ChainID() != network.ChainID {
		return fmt.Errorf("%w: wallet is on chain %d, %s is chain %d",
			domain.ErrWrongNetwork, wallet.ChainID(), network.Name, network.ChainID)
	}
	return nil
}
