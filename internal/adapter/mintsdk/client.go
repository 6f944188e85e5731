package mintsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"subname-minter/internal/adapter/authority"
	dto "subname-minter/internal/adapter/authority/dto"
	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	domainService "subname-minter/internal/domain/service"
	"subname-minter/internal/pkg/apperrors"

	"go.uber.org/zap"
	"gopkg.in/h2non/gentleman.v2"
	"gopkg.in/h2non/gentleman.v2/plugins/timeout"
)

// Compile-time check
var _ domainService.MintParameterProvider = (*Client)(nil)

// Client is the SDK-style parameter provider. It talks to the same authority endpoint
// and also returns display pricing derived from the signed bundle.
type Client struct {
	cli    *gentleman.Client
	logger *zap.Logger
}

// New creates an SDK client for the authority at cfg.URL.
func New(cfg config.AuthorityConfig, logger *zap.Logger) domainService.MintParameterProvider {
	d := cfg.Timeout
	if d <= 0 {
		d = 15 * time.Second
	}

	cli := gentleman.New().URL(strings.TrimRight(cfg.URL, "/"))
	cli.Use(timeout.Request(d))
	if cfg.APIKey != "" {
		cli.SetHeader(authority.APIKeyHeader, cfg.APIKey)
	}

	return &Client{
		cli:    cli,
		logger: logger.Named("MintSDKClient"),
	}
}

// MintParameters fetches a fresh signed bundle and attaches a price estimate.
func (c *Client) MintParameters(ctx context.Context, req entity.MintRequest) (*entity.MintQuote, error) {
	r := c.cli.Post()
	r.AddPath(authority.MintingParametersPath)
	r.JSON(authority.NewRequest(req))
	r.Context.SetCancelContext(ctx)

	resp, err := r.Send()
	if err != nil {
		c.logger.Warn("SDK mint parameters request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w: %v", domain.ErrProviderUnreachable, apperrors.ErrExternalServiceFailure, err)
	}
	defer resp.Close()

	body := resp.Bytes()
	if err := authority.ClassifyResponse(resp.StatusCode, body); err != nil {
		c.logger.Info("Minting authority refused SDK request",
			zap.String("name", req.Candidate.FullName()),
			zap.Int("statusCode", resp.StatusCode),
			zap.Error(err),
		)
		return nil, err
	}

	var raw dto.MintParametersResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w: invalid response body: %v", domain.ErrProviderUnreachable, apperrors.ErrExternalServiceFailure, err)
	}

	quote, err := authority.ToQuote(raw, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", domain.ErrProviderUnreachable, apperrors.ErrExternalServiceFailure, err)
	}
	quote.Estimate = entity.NewPriceEstimate(quote.Params.Price, quote.Params.Fee)

	c.logger.Debug("Received SDK mint parameters",
		zap.String("name", req.Candidate.FullName()),
		zap.String("total", quote.Estimate.Total),
	)
	return quote, nil
}
