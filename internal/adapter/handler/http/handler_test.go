package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
	"go.uber.org/zap"

	delivery "subname-minter/internal/adapter/delivery/http"
	handler "subname-minter/internal/adapter/handler/http"
	"subname-minter/internal/adapter/metrics"
	"subname-minter/internal/application/port"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
)

type fakeService struct {
	searchErr error
	mintErr   error
}

var _ port.MintService = (*fakeService)(nil)

func (f *fakeService) Networks() []entity.NetworkContext {
	return []entity.NetworkContext{{
		ID: "sepolia", Name: "Sepolia", ChainID: 11155111, Environment: entity.EnvironmentTestnet,
		Contracts: entity.Contracts{MintController: common.HexToAddress("0x313442ba3A0b12193787BD162f99Ed3C415F2886")},
	}}
}

func (f *fakeService) CheckedRPCs(_ context.Context, id string) ([]entity.RPCDetail, error) {
	if id != "sepolia" {
		return nil, fmt.Errorf("%w: %s", domain.ErrNetworkNotFound, id)
	}
	return []entity.RPCDetail{{URL: "https://down.example", Protocol: entity.ProtocolHTTPS}},
		fmt.Errorf("%w: %s", domain.ErrNoRPCsAvailable, id)
}

func (f *fakeService) PickRPC(context.Context, string) (entity.RPCURL, error) {
	return "", domain.ErrNoRPCsAvailable
}

func (f *fakeService) OpenSession(_ context.Context, req port.ConnectRequest) (entity.Session, error) {
	if req.Address == "bad" {
		return entity.Session{}, domain.ErrInvalidInput
	}
	return entity.Session{ID: "s1", Status: entity.StatusIdle}, nil
}

func (f *fakeService) Session(_ context.Context, id string) (entity.Session, error) {
	if id != "s1" {
		return entity.Session{}, domain.ErrSessionNotFound
	}
	return entity.Session{ID: id}, nil
}

func (f *fakeService) Search(_ context.Context, _ string, label string) (entity.SearchResult, error) {
	return entity.SearchResult{Query: label, Primary: label + ".kalidecoder.eth", Availability: entity.AvailabilityUnknown}, f.searchErr
}

func (f *fakeService) Mint(_ context.Context, _ string, cmd port.MintCommand) (entity.MintOutcome, error) {
	outcome := entity.MintOutcome{Name: cmd.Label + ".kalidecoder.eth", Status: entity.StatusSubmitted, TxHash: "0x01"}
	if f.mintErr != nil {
		outcome.Status = entity.StatusIdle
		outcome.TxHash = ""
		outcome.Kind = domain.Classify(f.mintErr)
		outcome.Message = domain.UserMessage(f.mintErr)
	}
	return outcome, f.mintErr
}

func (f *fakeService) SubnamesByOwner(_ context.Context, _ string, page int) (entity.SubnamePage, error) {
	return entity.SubnamePage{Page: page, Size: 20}, nil
}

func (f *fakeService) TextRecord(_ context.Context, _ string, key string) (string, error) {
	if key == "avatar" {
		return "", domain.ErrInvalidInput
	}
	return "https://app.ens.domains/alice.kalidecoder.eth", nil
}

func startServer(t *testing.T, svc port.MintService) *fasthttp.Client {
	t.Helper()

	reg := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	recorder.MintFinished("onchain", "submitted", time.Second)

	r := router.New()
	h := handler.NewMintHandler(svc, zap.NewNop())
	require.NoError(t, delivery.RegisterRoutes(r, h, reg, "100-M", zap.NewNop()))

	ln := fasthttputil.NewInmemoryListener()
	server := &fasthttp.Server{Handler: delivery.LoggingMiddleware(r.Handler, zap.NewNop())}
	go func() { _ = server.Serve(ln) }()
	t.Cleanup(func() { _ = server.Shutdown() })

	return &fasthttp.Client{Dial: func(string) (net.Conn, error) { return ln.Dial() }}
}

func do(t *testing.T, client *fasthttp.Client, method, uri, body string) (int, []byte) {
	t.Helper()
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.SetRequestURI("http://minter" + uri)
	if body != "" {
		req.Header.SetContentType("application/json")
		req.SetBodyString(body)
	}
	require.NoError(t, client.DoTimeout(req, resp, time.Second))
	return resp.StatusCode(), append([]byte(nil), resp.Body()...)
}

func TestMintHandler_Routes(t *testing.T) {
	client := startServer(t, &fakeService{})

	tests := []struct {
		name       string
		method     string
		uri        string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "health", method: "GET", uri: "/health", wantStatus: 200, wantBody: "OK"},
		{name: "networks", method: "GET", uri: "/networks", wantStatus: 200, wantBody: `"chainId":11155111`},
		{name: "rpcs without working endpoints", method: "GET", uri: "/networks/sepolia/rpcs", wantStatus: 200, wantBody: `"isWorking":false`},
		{name: "rpcs unknown network", method: "GET", uri: "/networks/goerli/rpcs", wantStatus: 404, wantBody: `"kind":"not_found"`},
		{name: "open session", method: "POST", uri: "/sessions", wantStatus: 201, wantBody: `"id":"s1"`},
		{name: "open session bad address", method: "POST", uri: "/sessions", body: `{"address":"bad"}`, wantStatus: 400, wantBody: `"kind":"invalid_input"`},
		{name: "open session bad json", method: "POST", uri: "/sessions", body: `{`, wantStatus: 400},
		{name: "unknown session", method: "GET", uri: "/sessions/nope", wantStatus: 404},
		{name: "mint", method: "POST", uri: "/sessions/s1/mint", body: `{"label":"alice"}`, wantStatus: 200, wantBody: `"txHash":"0x01"`},
		{name: "mint without body", method: "POST", uri: "/sessions/s1/mint", wantStatus: 400},
		{name: "subnames bad page", method: "GET", uri: "/subnames?owner=0x01&page=x", wantStatus: 400},
		{name: "subnames", method: "GET", uri: "/subnames?owner=0x01&page=2", wantStatus: 200, wantBody: `"page":2`},
		{name: "text record", method: "GET", uri: "/names/alice.kalidecoder.eth/text/url", wantStatus: 200, wantBody: `"value":"https://app.ens.domains/alice.kalidecoder.eth"`},
		{name: "text record refused", method: "GET", uri: "/names/alice.kalidecoder.eth/text/avatar", wantStatus: 400},
		{name: "metrics", method: "GET", uri: "/metrics", wantStatus: 200, wantBody: "subname_minter_mint_duration_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, client, tt.method, tt.uri, tt.body)
			assert.Equal(t, tt.wantStatus, status, string(body))
			if tt.wantBody != "" {
				assert.Contains(t, string(body), tt.wantBody)
			}
		})
	}
}

func TestMintHandler_SearchUnknownIsRendered(t *testing.T) {
	client := startServer(t, &fakeService{searchErr: fmt.Errorf("%w: rpc down", domain.ErrAvailabilityUnknown)})

	status, body := do(t, client, "GET", "/sessions/s1/search?label=alice", "")
	require.Equal(t, fasthttp.StatusOK, status)

	var view handler.SearchView
	require.NoError(t, json.Unmarshal(body, &view))
	assert.Equal(t, "alice.kalidecoder.eth", view.Primary)
	assert.Equal(t, entity.AvailabilityUnknown, view.Availability)
	require.NotNil(t, view.Error)
	assert.Equal(t, domain.KindAvailabilityUnknown, view.Error.Kind)
}

func TestMintHandler_MintFailureStatus(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: domain.ErrWalletNotReady, wantStatus: fasthttp.StatusPreconditionFailed},
		{err: domain.ErrBusy, wantStatus: fasthttp.StatusConflict},
		{err: &domain.MintUnavailableError{Reason: "Label is reserved"}, wantStatus: fasthttp.StatusUnprocessableEntity},
		{err: domain.ErrProviderUnreachable, wantStatus: fasthttp.StatusBadGateway},
		{err: domain.ErrSimulationReverted, wantStatus: fasthttp.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(string(domain.Classify(tt.err)), func(t *testing.T) {
			client := startServer(t, &fakeService{mintErr: tt.err})

			status, body := do(t, client, "POST", "/sessions/s1/mint", `{"label":"alice"}`)
			assert.Equal(t, tt.wantStatus, status)

			var outcome entity.MintOutcome
			require.NoError(t, json.Unmarshal(body, &outcome))
			assert.Equal(t, domain.Classify(tt.err), outcome.Kind)
			assert.Equal(t, domain.UserMessage(tt.err), outcome.Message)
		})
	}
}
