package ethereum

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	domainService "subname-minter/internal/domain/service"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Compile-time check
var _ domainService.Wallet = (*KeyedWallet)(nil)

// KeyedWallet signs transactions with a local private key for one chain.
type KeyedWallet struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID uint64
	signer  types.Signer
}

// LoadWallet reads a hex-encoded secp256k1 key from path.
func LoadWallet(path string, chainID uint64) (*KeyedWallet, error) {
	key, err := crypto.LoadECDSA(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key from %s: %w", path, err)
	}
	return NewKeyedWallet(key, chainID), nil
}

// NewKeyedWallet wraps key as a wallet connected to chainID.
func NewKeyedWallet(key *ecdsa.PrivateKey, chainID uint64) *KeyedWallet {
	return &KeyedWallet{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
		signer:  types.LatestSignerForChainID(new(big.Int).SetUint64(chainID)),
	}
}

// Address returns the wallet's account address.
func (w *KeyedWallet) Address() common.Address {
	return w.address
}

// ChainID returns the chain the wallet signs for.
func (w *KeyedWallet) ChainID() uint64 {
	return w.chainID
}

// SignTx signs tx for the wallet's chain.
func (w *KeyedWallet) SignTx(tx *types.Transaction) (*types.Transaction, error) {
	signed, err := types.SignTx(tx, w.signer, w.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}
	return signed, nil
}
