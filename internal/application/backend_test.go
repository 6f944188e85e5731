package application

import (
	"context"
	"errors"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"subname-minter/internal/adapter/authority"
	"subname-minter/internal/adapter/mintsdk"
	"subname-minter/internal/adapter/storage/memory"
	"subname-minter/internal/application/port"
	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	"subname-minter/internal/domain/mint"
	domainService "subname-minter/internal/domain/service"
	"subname-minter/internal/domain/service/mocks"
)

func TestOnchainBackend_SimulationFailureThroughService(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockAvailabilityResolver(ctrl)
	provider := mocks.NewMockMintParameterProvider(ctrl)
	chain := mocks.NewMockChainBackend(ctrl)
	signer := newTestWallet(ctrl, testNetwork().ChainID)

	backend := NewOnchainBackend(config.BackendOnchain, resolver, provider,
		NewMintExecutor(chain, zap.NewNop()), "", zap.NewNop())
	sessions := memory.NewSessionRepository(config.SessionConfig{}, zap.NewNop())
	svc := NewMintService(MintServiceParams{
		Sessions:    sessions,
		Backend:     backend,
		Signer:      signer,
		Network:     testNetwork(),
		Parent:      testParent,
		ExpiryYears: 1,
		Logger:      zap.NewNop(),
	})

	resolver.EXPECT().IsAvailable(gomock.Any(), candidate("alice")).Return(true, nil)
	provider.EXPECT().MintParameters(gomock.Any(), gomock.Any()).Return(testQuote("alice"), nil)
	chain.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, errors.New("execution reverted"))

	session, err := svc.OpenSession(context.Background(), port.ConnectRequest{})
	require.NoError(t, err)

	outcome, err := svc.Mint(context.Background(), session.ID, port.MintCommand{Label: "alice"})
	require.ErrorIs(t, err, domain.ErrSimulationReverted)
	assert.Equal(t, entity.StatusSimulationFailed, outcome.Status)
	assert.Equal(t, domain.KindSimulationReverted, outcome.Kind)
	assert.Empty(t, outcome.TxHash)

	stored, err := svc.Session(context.Background(), session.ID)
	require.NoError(t, err)
	assert.False(t, stored.Busy)
	assert.Equal(t, entity.StatusSimulationFailed, stored.Status)
}

func TestSDKBackend_MintThroughService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, authority.MintingParametersPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"content":{"label":"alice","owner":"`+testAccount.Hex()+`",
			"fee":"2000000000000000","price":"10000000000000000",
			"parentNode":"0x0000000000000000000000000000000000000000000000000000000000000001",
			"paymentReceiver":"0x2222222222222222222222222222222222222222",
			"verifiedMinter":"0x3333333333333333333333333333333333333333",
			"signatureExpiry":"1760000000","expiry":"1791536000"},"signature":"0x01"}`)
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockAvailabilityResolver(ctrl)
	chain := mocks.NewMockChainBackend(ctrl)
	signer := newTestWallet(ctrl, testNetwork().ChainID)

	provider := mintsdk.New(config.AuthorityConfig{URL: srv.URL, Timeout: time.Second}, zap.NewNop())
	backend := NewOnchainBackend(config.BackendSDK, resolver, provider,
		NewMintExecutor(chain, zap.NewNop()), "", zap.NewNop())
	svc := NewMintService(MintServiceParams{
		Sessions:    memory.NewSessionRepository(config.SessionConfig{}, zap.NewNop()),
		Backend:     backend,
		Signer:      signer,
		Network:     testNetwork(),
		Parent:      testParent,
		ExpiryYears: 1,
		Logger:      zap.NewNop(),
	})

	resolver.EXPECT().IsAvailable(gomock.Any(), candidate("alice")).Return(true, nil)
	chain.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			assert.Equal(t, testController, *msg.To)
			assert.Equal(t, "12000000000000000", msg.Value.String())
			return nil, nil
		})
	chain.EXPECT().EstimateGas(gomock.Any(), gomock.Any()).Return(uint64(200_000), nil)
	chain.EXPECT().PendingNonceAt(gomock.Any(), testAccount).Return(uint64(0), nil)
	chain.EXPECT().SuggestGasTipCap(gomock.Any()).Return(big.NewInt(1), nil)
	chain.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{BaseFee: big.NewInt(1)}, nil)
	signer.EXPECT().SignTx(gomock.Any()).DoAndReturn(func(tx *types.Transaction) (*types.Transaction, error) {
		return tx, nil
	})
	chain.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)

	session, err := svc.OpenSession(context.Background(), port.ConnectRequest{})
	require.NoError(t, err)

	outcome, err := svc.Mint(context.Background(), session.ID, port.MintCommand{Label: "alice"})
	require.NoError(t, err)
	assert.True(t, outcome.Succeeded())
	assert.Equal(t, config.BackendSDK, outcome.Backend)
	assert.NotEmpty(t, outcome.TxHash)
	require.NotNil(t, outcome.Estimate)
	assert.Equal(t, "0.012", outcome.Estimate.Total)
}

func TestOnchainBackend_Assemble(t *testing.T) {
	backend := NewOnchainBackend(config.BackendSDK, nil, nil, nil, "", zap.NewNop())
	assert.Equal(t, config.BackendSDK, backend.Kind())
	assert.True(t, backend.RequiresSigner())

	tx, err := backend.Assemble(testQuote("alice"), testNetwork())
	require.NoError(t, err)
	assert.Equal(t, testController, tx.To)
	require.Len(t, tx.Args, 4)
	assert.Equal(t, mint.SourceTag(mint.DefaultSourceTag), tx.Args[3])

	network := testNetwork()
	network.Contracts.MintController = [20]byte{}
	_, err = backend.Assemble(testQuote("alice"), network)
	require.Error(t, err)
}

func TestOffchainBackend_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockSubnameDirectory(ctrl)
	backend := NewOffchainBackend(directory, "", zap.NewNop())

	assert.False(t, backend.RequiresSigner())

	req := entity.MintRequest{Candidate: candidate("alice"), Owner: testAccount, Minter: testAccount, Network: testNetwork()}

	quote, err := backend.MintParameters(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, quote.Params.Price.Cmp(big.NewInt(0)))
	tx, err := backend.Assemble(quote, testNetwork())
	require.ErrorIs(t, err, domainService.ErrNoTransaction)
	assert.Nil(t, tx)

	directory.EXPECT().CreateSubname(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, create entity.CreateSubnameRequest) (*entity.SubnameRecord, error) {
			assert.Equal(t, "alice", create.Label)
			assert.Equal(t, testParent, create.Parent)
			assert.Equal(t, map[string]string{TextKeyName: "alice", TextKeyURL: DefaultTextURL}, create.Texts)
			assert.Equal(t, testAccount.Hex(), create.Addresses[entity.CoinTypeETH])
			assert.Equal(t, map[string]string{MetadataSender: testAccount.Hex()}, create.Metadata)
			return &entity.SubnameRecord{FullName: "alice.kalidecoder.eth", Label: "alice", Parent: testParent, Owner: testAccount}, nil
		})

	var statuses []entity.MintStatus
	outcome, err := backend.Submit(context.Background(), req, nil, nil, func(s entity.MintStatus) {
		statuses = append(statuses, s)
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSubmitted, outcome.Status)
	assert.Equal(t, "alice.kalidecoder.eth", outcome.Name)
	assert.Equal(t, []entity.MintStatus{entity.StatusSubmitting, entity.StatusSubmitted}, statuses)
}

func TestOffchainBackend_ConfiguredProfileURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockSubnameDirectory(ctrl)
	backend := NewOffchainBackend(directory, "https://kalidecoder.example", zap.NewNop())

	other := common.HexToAddress("0x00000000000000000000000000000000000000d4")
	directory.EXPECT().CreateSubname(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, create entity.CreateSubnameRequest) (*entity.SubnameRecord, error) {
			assert.Equal(t, "https://kalidecoder.example", create.Texts[TextKeyURL])
			assert.Equal(t, other, create.Owner)
			assert.Equal(t, testAccount.Hex(), create.Metadata[MetadataSender])
			return &entity.SubnameRecord{FullName: "alice.kalidecoder.eth"}, nil
		})

	_, err := backend.Submit(context.Background(),
		entity.MintRequest{Candidate: candidate("alice"), Owner: other, Minter: testAccount}, nil, nil, nil)
	require.NoError(t, err)
}

func TestOffchainBackend_SubmitConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockSubnameDirectory(ctrl)
	backend := NewOffchainBackend(directory, "", zap.NewNop())

	directory.EXPECT().CreateSubname(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNameTaken)
	outcome, err := backend.Submit(context.Background(),
		entity.MintRequest{Candidate: candidate("alice"), Owner: testAccount}, nil, nil, nil)
	require.ErrorIs(t, err, domain.ErrNameTaken)
	assert.Equal(t, entity.StatusSubmissionFailed, outcome.Status)

	directory.EXPECT().CreateSubname(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	_, err = backend.Submit(context.Background(),
		entity.MintRequest{Candidate: candidate("alice"), Owner: testAccount}, nil, nil, nil)
	require.ErrorIs(t, err, domain.ErrSubmissionFailed)
}

func TestOffchainMint_OnlyNeedsConnectedAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockSubnameDirectory(ctrl)
	svc := NewMintService(MintServiceParams{
		Sessions:    memory.NewSessionRepository(config.SessionConfig{}, zap.NewNop()),
		Backend:     NewOffchainBackend(directory, "", zap.NewNop()),
		Directory:   directory,
		Network:     testNetwork(),
		Parent:      testParent,
		ExpiryYears: 1,
		Logger:      zap.NewNop(),
	})

	session, err := svc.OpenSession(context.Background(), port.ConnectRequest{Address: testAccount.Hex(), ChainID: 1})
	require.NoError(t, err)

	directory.EXPECT().IsAvailable(gomock.Any(), "alice.kalidecoder.eth").Return(true, nil)
	directory.EXPECT().CreateSubname(gomock.Any(), gomock.Any()).
		Return(&entity.SubnameRecord{FullName: "alice.kalidecoder.eth"}, nil)

	outcome, err := svc.Mint(context.Background(), session.ID, port.MintCommand{Label: "alice"})
	require.NoError(t, err)
	assert.True(t, outcome.Succeeded())
	assert.Equal(t, config.BackendOffchain, outcome.Backend)
	require.NotNil(t, outcome.Estimate)
	assert.Equal(t, "0", outcome.Estimate.Total)
}

func TestMintService_DirectoryLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockSubnameDirectory(ctrl)
	svc := NewMintService(MintServiceParams{
		Sessions:          memory.NewSessionRepository(config.SessionConfig{}, zap.NewNop()),
		Backend:           NewOffchainBackend(directory, "", zap.NewNop()),
		Directory:         directory,
		Network:           testNetwork(),
		Parent:            testParent,
		DirectoryPageSize: 5,
		Logger:            zap.NewNop(),
	})

	directory.EXPECT().ListByOwner(gomock.Any(), testParent, testAccount, 1, 5).
		Return(entity.SubnamePage{Page: 1, Size: 5, Total: 1}, nil)
	page, err := svc.SubnamesByOwner(context.Background(), testAccount.Hex(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	_, err = svc.SubnamesByOwner(context.Background(), "nope", 1)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	directory.EXPECT().TextRecord(gomock.Any(), "alice.kalidecoder.eth", "url").Return("https://example.com", nil)
	value, err := svc.TextRecord(context.Background(), " Alice.kalidecoder.eth ", "url")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", value)

	_, err = svc.TextRecord(context.Background(), "alice.kalidecoder.eth", "")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
