package directory

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	dto "subname-minter/internal/adapter/directory/dto"
	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	"subname-minter/internal/pkg/apperrors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
	"go.uber.org/zap"
)

var testOwner = common.HexToAddress("0x1111111111111111111111111111111111111111")

func newTestClient(t *testing.T, handler fasthttp.RequestHandler) *Client {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	go func() { _ = fasthttp.Serve(ln, handler) }()
	t.Cleanup(func() { _ = ln.Close() })

	client := &fasthttp.Client{Dial: func(string) (net.Conn, error) { return ln.Dial() }}
	cfg := config.DirectoryConfig{URL: "http://directory.test", APIKey: "k", Timeout: time.Second, PageSize: 10}
	return newClient(client, cfg, zap.NewNop())
}

func TestClient_IsAvailable(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		want      bool
		wantErrIs error
	}{
		{"available", 200, `{"isAvailable":true}`, true, nil},
		{"taken", 200, `{"isAvailable":false}`, false, nil},
		{"alternate field", 200, `{"available":true}`, true, nil},
		{"missing flag", 200, `{}`, false, domain.ErrAvailabilityUnknown},
		{"server error", 500, `boom`, false, domain.ErrAvailabilityUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
				assert.Equal(t, availabilityPath+"alice.kalidecoder.eth", string(ctx.Path()))
				assert.Equal(t, "k", string(ctx.Request.Header.Peek("x-api-key")))
				ctx.SetStatusCode(tt.status)
				ctx.SetBodyString(tt.body)
			})

			got, err := c.IsAvailable(context.Background(), "alice.kalidecoder.eth")
			assert.Equal(t, tt.want, got)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_CreateSubname(t *testing.T) {
	var got dto.CreateSubnameRequest
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, fasthttp.MethodPost, string(ctx.Method()))
		assert.Equal(t, subnamesPath, string(ctx.Path()))
		assert.NoError(t, json.Unmarshal(ctx.PostBody(), &got))
		ctx.SetStatusCode(fasthttp.StatusCreated)
	})

	rec, err := c.CreateSubname(context.Background(), entity.CreateSubnameRequest{
		Label:     "alice",
		Parent:    "kalidecoder.eth",
		Owner:     testOwner,
		Texts:     map[string]string{"url": "https://x", "description": "d"},
		Addresses: map[int]string{entity.CoinTypeETH: testOwner.Hex()},
		Metadata:  map[string]string{"sender": testOwner.Hex()},
	})
	require.NoError(t, err)
	assert.Equal(t, "alice.kalidecoder.eth", rec.FullName)

	assert.Equal(t, "alice", got.Label)
	assert.Equal(t, "kalidecoder.eth", got.ParentName)
	assert.Equal(t, testOwner.Hex(), got.Owner)
	assert.Equal(t, []dto.TextRecordRaw{{Key: "description", Value: "d"}, {Key: "url", Value: "https://x"}}, got.Texts)
	assert.Equal(t, []dto.AddressRecordRaw{{Coin: 60, Value: testOwner.Hex()}}, got.Addresses)
	assert.Equal(t, []dto.MetadataRaw{{Key: "sender", Value: testOwner.Hex()}}, got.Metadata)
}

func TestClient_CreateSubname_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErrIs error
		wantMsg   string
	}{
		{"conflict without reason", fasthttp.StatusConflict, ``, domain.ErrNameTaken, "This name is already taken."},
		{"validation", fasthttp.StatusBadRequest, `{"message":"Label contains invalid characters"}`, domain.ErrMintUnavailable, "Label contains invalid characters"},
		{"server error", fasthttp.StatusInternalServerError, ``, domain.ErrSubmissionFailed, "The transaction was not sent."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
				ctx.SetStatusCode(tt.status)
				ctx.SetBodyString(tt.body)
			})
			_, err := c.CreateSubname(context.Background(), entity.CreateSubnameRequest{Label: "alice", Parent: "kalidecoder.eth", Owner: testOwner})
			assert.ErrorIs(t, err, tt.wantErrIs)
			assert.Equal(t, tt.wantMsg, domain.UserMessage(err))
		})
	}
}

func TestClient_ListByOwner(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		args := ctx.QueryArgs()
		assert.Equal(t, "kalidecoder.eth", string(args.Peek("parentName")))
		assert.Equal(t, testOwner.Hex(), string(args.Peek("owner")))
		assert.Equal(t, "2", string(args.Peek("page")))
		assert.Equal(t, "10", string(args.Peek("size")))
		ctx.SetBodyString(`{"items":[{"label":"alice","parentName":"kalidecoder.eth","owner":"` + testOwner.Hex() + `",
			"texts":[{"key":"url","value":"https://x"}],"addresses":[{"coin":60,"value":"` + testOwner.Hex() + `"}]}],"total":11}`)
	})

	page, err := c.ListByOwner(context.Background(), "kalidecoder.eth", testOwner, 2, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "alice.kalidecoder.eth", page.Items[0].FullName)
	assert.Equal(t, testOwner, page.Items[0].Owner)
	assert.Equal(t, "https://x", page.Items[0].Texts["url"])
	assert.Equal(t, testOwner.Hex(), page.Items[0].Addresses[entity.CoinTypeETH])
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.False(t, page.HasMore())
}

func TestClient_TextRecord(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case subnamesPath + "/alice.kalidecoder.eth/texts/url":
			ctx.SetBodyString(`{"key":"url","value":"https://alice.example"}`)
		default:
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		}
	})

	v, err := c.TextRecord(context.Background(), "alice.kalidecoder.eth", "url")
	require.NoError(t, err)
	assert.Equal(t, "https://alice.example", v)

	_, err = c.TextRecord(context.Background(), "alice.kalidecoder.eth", "avatar")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
