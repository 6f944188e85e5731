package authority

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	dto "subname-minter/internal/adapter/authority/dto"
	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	domainService "subname-minter/internal/domain/service"
	"subname-minter/internal/pkg/apperrors"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.MintParameterProvider = (*Client)(nil)

// MintingParametersPath is the authority endpoint that issues signed parameter bundles.
const MintingParametersPath = "/api/v1/minting-parameters"

// APIKeyHeader carries the optional API key.
const APIKeyHeader = "x-api-key"

// Client requests mint parameters from the minting authority over HTTPS.
type Client struct {
	client  *fasthttp.Client
	url     string
	apiKey  string
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a minting-authority client.
func NewClient(cfg config.AuthorityConfig, logger *zap.Logger) domainService.MintParameterProvider {
	return newClient(&fasthttp.Client{}, cfg, logger)
}

func newClient(client *fasthttp.Client, cfg config.AuthorityConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		client:  client,
		url:     strings.TrimRight(cfg.URL, "/") + MintingParametersPath,
		apiKey:  cfg.APIKey,
		timeout: timeout,
		logger:  logger.Named("MintAuthorityClient"),
	}
}

// MintParameters fetches a fresh signed bundle for req. Results are never cached.
func (c *Client) MintParameters(ctx context.Context, req entity.MintRequest) (*entity.MintQuote, error) {
	payload, err := json.Marshal(NewRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode mint parameters request: %v", apperrors.ErrInternal, err)
	}

	httpReq := fasthttp.AcquireRequest()
	httpResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(httpReq)
	defer fasthttp.ReleaseResponse(httpResp)

	httpReq.SetRequestURI(c.url)
	httpReq.Header.SetMethod(fasthttp.MethodPost)
	httpReq.Header.SetContentType("application/json")
	if c.apiKey != "" {
		httpReq.Header.Set(APIKeyHeader, c.apiKey)
	}
	httpReq.SetBody(payload)

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}

	c.logger.Debug("Requesting mint parameters",
		zap.String("name", req.Candidate.FullName()),
		zap.String("minter", req.Minter.Hex()),
		zap.Bool("isTestnet", req.Network.IsTestnet()),
	)

	if err := c.client.DoTimeout(httpReq, httpResp, timeout); err != nil {
		c.logger.Warn("Mint parameters request failed", zap.Error(err))
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, fmt.Errorf("%w: %w: request timed out after %v", domain.ErrProviderUnreachable, apperrors.ErrTimeout, timeout)
		}
		return nil, fmt.Errorf("%w: %w: %v", domain.ErrProviderUnreachable, apperrors.ErrExternalServiceFailure, err)
	}

	body := httpResp.Body()
	if err := ClassifyResponse(httpResp.StatusCode(), body); err != nil {
		c.logger.Info("Minting authority refused request",
			zap.String("name", req.Candidate.FullName()),
			zap.Int("statusCode", httpResp.StatusCode()),
			zap.Error(err),
		)
		return nil, err
	}

	var raw dto.MintParametersResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		c.logger.Error("Failed to decode mint parameters", zap.Error(err), zap.ByteString("body", body))
		return nil, fmt.Errorf("%w: %w: invalid response body: %v", domain.ErrProviderUnreachable, apperrors.ErrExternalServiceFailure, err)
	}

	quote, err := ToQuote(raw, req)
	if err != nil {
		c.logger.Error("Mint parameters failed validation", zap.Error(err))
		return nil, fmt.Errorf("%w: %w: %v", domain.ErrProviderUnreachable, apperrors.ErrExternalServiceFailure, err)
	}

	c.logger.Debug("Received mint parameters",
		zap.String("name", req.Candidate.FullName()),
		zap.String("fee", quote.Params.Fee.String()),
		zap.String("price", quote.Params.Price.String()),
		zap.Uint64("signatureExpiry", quote.Params.SignatureExpiry),
	)
	return quote, nil
}

// ClassifyResponse maps an authority HTTP status onto the error taxonomy. It returns nil for 2xx.
// Client errors other than auth and throttling mean the authority refuses the name;
// everything else means the authority could not serve the request.
func ClassifyResponse(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == fasthttp.StatusUnauthorized || status == fasthttp.StatusForbidden:
		return fmt.Errorf("%w: %w: status %d", domain.ErrProviderUnreachable, apperrors.ErrUnauthorized, status)
	case status == fasthttp.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: rate limited", domain.ErrProviderUnreachable, apperrors.ErrExternalServiceFailure)
	case status >= 400 && status < 500:
		return &domain.MintUnavailableError{Reason: FirstValidationMessage(body)}
	default:
		return fmt.Errorf("%w: %w: status %d", domain.ErrProviderUnreachable, apperrors.ErrExternalServiceFailure, status)
	}
}
