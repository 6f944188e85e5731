package chainlist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	dto "subname-minter/internal/adapter/storage/chainlist/dto"
	"subname-minter/internal/domain/entity"
	"subname-minter/internal/pkg/apperrors"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Source fetches public RPC endpoints from a chainlist chains document.
type Source struct {
	client *fasthttp.Client
	url    string
	logger *zap.Logger
}

// NewSource creates a chainlist source reading url.
func NewSource(url string, logger *zap.Logger) *Source {
	return newSource(&fasthttp.Client{}, url, logger)
}

func newSource(client *fasthttp.Client, url string, logger *zap.Logger) *Source {
	return &Source{
		client: client,
		url:    url,
		logger: logger.Named("ChainlistSource"),
	}
}

// RPCs returns the listed RPC endpoints of every chain in chainIDs.
func (s *Source) RPCs(ctx context.Context, chainIDs []uint64) (map[uint64][]entity.RPCURL, error) {
	rawChains, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[uint64]struct{}, len(chainIDs))
	for _, id := range chainIDs {
		wanted[id] = struct{}{}
	}
	return toRPCsByChain(rawChains, wanted, s.logger), nil
}

func (s *Source) fetch(ctx context.Context) ([]dto.ChainRaw, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip")

	timeout := 15 * time.Second
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}

	s.logger.Debug("Fetching chains from chainlist", zap.String("url", s.url), zap.Duration("timeout", timeout))

	if err := s.client.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("%w: failed to execute request to chainlist: %v",
			apperrors.ErrExternalServiceFailure, err,
		)
	}

	if resp.StatusCode() == fasthttp.StatusNotFound {
		return nil, fmt.Errorf("%w: chainlist source reported not found (%s)", apperrors.ErrNotFound, s.url)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: chainlist returned status %d",
			apperrors.ErrExternalServiceFailure, resp.StatusCode(),
		)
	}

	body := resp.Body()
	if bytes.EqualFold(resp.Header.Peek(fasthttp.HeaderContentEncoding), []byte("gzip")) {
		unzipped, err := resp.BodyGunzip()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decompress chainlist response: %v",
				apperrors.ErrExternalServiceFailure, err,
			)
		}
		body = unzipped
	}

	var rawChains []dto.ChainRaw
	if err := json.Unmarshal(body, &rawChains); err != nil {
		s.logger.Error("Failed to unmarshal chainlist response",
			zap.Error(err), zap.ByteString("bodySample", body[:min(1024, len(body))]),
		)
		return nil, fmt.Errorf("%w: failed to parse chainlist response: %v",
			apperrors.ErrExternalServiceFailure, err,
		)
	}

	s.logger.Info("Fetched chains from chainlist", zap.Int("count", len(rawChains)))
	return rawChains, nil
}
