package application

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"subname-minter/internal/domain/entity"
)

const testParent = "kalidecoder.eth"

var (
	testController = common.HexToAddress("0x313442ba3A0b12193787BD162f99Ed3C415F2886")
	testAccount    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
)

func testNetwork() entity.NetworkContext {
	return entity.NetworkContext{
		ID:          "sepolia",
		Name:        "Sepolia",
		ChainID:     11155111,
		Environment: entity.EnvironmentTestnet,
		RPC:         []entity.RPCURL{"https://rpc.sepolia.example"},
		Contracts: entity.Contracts{
			Registry:       common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"),
			Resolver:       common.HexToAddress("0x8FADE66B79cC9f707aB26799354482EB93a5B7dD"),
			MintController: testController,
		},
		ExplorerURL: "https://sepolia.etherscan.io",
	}
}

func testQuote(label string) *entity.MintQuote {
	return &entity.MintQuote{
		Params: entity.MintParameters{
			Label:           label,
			ParentNode:      common.HexToHash("0x01"),
			Resolver:        testNetwork().Contracts.Resolver,
			Owner:           testAccount,
			Price:           big.NewInt(500_000_000_000_000_000),
			Fee:             big.NewInt(10_000_000_000_000_000),
			PaymentReceiver: common.HexToAddress("0x00000000000000000000000000000000000000b2"),
			Expiry:          1_900_000_000,
			SignatureExpiry: 1_800_000_000,
			VerifiedMinter:  common.HexToAddress("0x00000000000000000000000000000000000000c3"),
		},
		Signature: []byte{0xde, 0xad, 0xbe, 0xef},
	}
}
