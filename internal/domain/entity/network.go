package entity

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Environment separates production networks from test networks.
type Environment string

// Known environments.
const (
	EnvironmentMainnet Environment = "mainnet"
	EnvironmentTestnet Environment = "testnet"
)

// Contracts holds the deployed contract addresses the minting flow talks to.
type Contracts struct {
	Registry       common.Address
	Resolver       common.Address
	MintController common.Address
}

// NetworkContext identifies a network and the contracts deployed on it.
// It is built once at start-up and never mutated afterwards.
type NetworkContext struct {
	ID          string
	Name        string
	ChainID     uint64
	Environment Environment
	RPC         []RPCURL
	Contracts   Contracts
	ExplorerURL string
}

// IsTestnet reports whether the network is a test network.
func (n NetworkContext) IsTestnet() bool {
	return n.Environment == EnvironmentTestnet
}

// TxURL returns the block-explorer link for a transaction hash, or "" if no explorer is configured.
func (n NetworkContext) TxURL(txHash string) string {
	if n.ExplorerURL == "" || txHash == "" {
		return ""
	}
	return strings.TrimRight(n.ExplorerURL, "/") + "/tx/" + txHash
}
