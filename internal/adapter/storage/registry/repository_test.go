package registry

import (
	"os"
	"path/filepath"
	"testing"

	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRepository_Embedded(t *testing.T) {
	repo, err := NewRepository(config.NetworkConfig{Active: "sepolia"}, zap.NewNop())
	require.NoError(t, err)

	sepolia, err := repo.Get("sepolia")
	require.NoError(t, err)
	assert.Equal(t, uint64(11155111), sepolia.ChainID)
	assert.True(t, sepolia.IsTestnet())
	assert.NotEqual(t, common.Address{}, sepolia.Contracts.Registry)
	assert.Equal(t, common.HexToAddress("0x313442ba3A0b12193787BD162f99Ed3C415F2886"), sepolia.Contracts.MintController)
	assert.NotEmpty(t, sepolia.RPC)

	mainnet, err := repo.Get("mainnet")
	require.NoError(t, err)
	assert.False(t, mainnet.IsTestnet())
	assert.Equal(t, common.HexToAddress("0xCf7625A2fb60B0822444E5964b4Ce80c148e7Fad"), mainnet.Contracts.MintController)
	assert.Equal(t, common.HexToAddress("0x231b0Ee14048e9dCcD1d247744d114a4EB5E8E63"), mainnet.Contracts.Resolver)

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "mainnet", list[0].ID)
	assert.Equal(t, "sepolia", list[1].ID)
}

func TestNewRepository_UnknownActiveNetwork(t *testing.T) {
	_, err := NewRepository(config.NetworkConfig{Active: "goerli"}, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
}

func TestNewRepository_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networks.yaml")
	doc := `networks:
  - identifier: devnet
    name: Local devnet
    chainId: 1337
    environment: testnet
    rpc: ["http://127.0.0.1:8545", "not a url"]
    contracts:
      registry: "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	repo, err := NewRepository(config.NetworkConfig{Active: "devnet", RegistryFile: path}, zap.NewNop())
	require.NoError(t, err)

	devnet, err := repo.Get("devnet")
	require.NoError(t, err)
	assert.Equal(t, []entity.RPCURL{"http://127.0.0.1:8545"}, devnet.RPC)
	assert.Equal(t, common.Address{}, devnet.Contracts.MintController)
	assert.Equal(t, "", devnet.TxURL("0xabc"))
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "networks: []"},
		{"bad environment", "networks:\n  - {identifier: x, chainId: 1, environment: staging}"},
		{"bad address", "networks:\n  - {identifier: x, chainId: 1, environment: mainnet, contracts: {registry: '0x123'}}"},
		{"missing chain id", "networks:\n  - {identifier: x, environment: mainnet}"},
		{"duplicate", "networks:\n  - {identifier: x, chainId: 1, environment: mainnet}\n  - {identifier: x, chainId: 2, environment: mainnet}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), zap.NewNop())
			assert.Error(t, err)
		})
	}
}

func TestRepository_GetReturnsCopy(t *testing.T) {
	repo, err := NewRepository(config.NetworkConfig{}, zap.NewNop())
	require.NoError(t, err)

	first, err := repo.Get("sepolia")
	require.NoError(t, err)
	first.RPC[0] = "http://mutated"

	second, err := repo.Get("sepolia")
	require.NoError(t, err)
	assert.NotEqual(t, entity.RPCURL("http://mutated"), second.RPC[0])
}
