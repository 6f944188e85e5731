package mintsdk

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"subname-minter/internal/adapter/authority"
	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRequest() entity.MintRequest {
	minter := common.HexToAddress("0x1111111111111111111111111111111111111111")
	return entity.MintRequest{
		Candidate:   entity.NameCandidate{Label: "alice", Parent: "kalidecoder.eth"},
		Minter:      minter,
		Owner:       minter,
		ExpiryYears: 1,
		Network:     entity.NetworkContext{ID: "mainnet", ChainID: 1, Environment: entity.EnvironmentMainnet},
	}
}

func TestClient_MintParameters_AttachesEstimate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, authority.MintingParametersPath, r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(authority.APIKeyHeader))
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"isTestnet":false`)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"content":{"label":"alice","owner":"0x1111111111111111111111111111111111111111",
			"fee":"2000000000000000","price":"10000000000000000",
			"parentNode":"0x0000000000000000000000000000000000000000000000000000000000000001",
			"paymentReceiver":"0x2222222222222222222222222222222222222222",
			"verifiedMinter":"0x3333333333333333333333333333333333333333",
			"signatureExpiry":"1760000000","expiry":"1791536000"},"signature":"0x01"}`)
	}))
	defer srv.Close()

	c := New(config.AuthorityConfig{URL: srv.URL, APIKey: "secret", Timeout: time.Second}, zap.NewNop())
	quote, err := c.MintParameters(context.Background(), testRequest())
	require.NoError(t, err)
	require.NotNil(t, quote.Estimate)
	assert.Equal(t, "0.01", quote.Estimate.Price)
	assert.Equal(t, "0.002", quote.Estimate.Fee)
	assert.Equal(t, "0.012", quote.Estimate.Total)
}

func TestClient_MintParameters_Refused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"errors":["Label too short"]}`)
	}))
	defer srv.Close()

	c := New(config.AuthorityConfig{URL: srv.URL}, zap.NewNop())
	_, err := c.MintParameters(context.Background(), testRequest())
	assert.ErrorIs(t, err, domain.ErrMintUnavailable)
	assert.Equal(t, "Label too short", domain.UserMessage(err))
}

func TestClient_MintParameters_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(config.AuthorityConfig{URL: url, Timeout: time.Second}, zap.NewNop())
	_, err := c.MintParameters(context.Background(), testRequest())
	assert.ErrorIs(t, err, domain.ErrProviderUnreachable)
}

func TestClient_MintParameters_HonoursCallerContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := New(config.AuthorityConfig{URL: srv.URL, Timeout: 5 * time.Second}, zap.NewNop())
	start := time.Now()
	_, err := c.MintParameters(ctx, testRequest())
	assert.ErrorIs(t, err, domain.ErrProviderUnreachable)
	assert.Less(t, time.Since(start), 2*time.Second)
}
