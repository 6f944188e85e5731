package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"subname-minter/internal/adapter/authority"
	dto "subname-minter/internal/adapter/directory/dto"
	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	domainService "subname-minter/internal/domain/service"
	"subname-minter/internal/pkg/apperrors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tidwall/gjson"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.SubnameDirectory = (*Client)(nil)

const (
	subnamesPath     = "/api/v1/subnames"
	availabilityPath = subnamesPath + "/availability/"
	searchPath       = subnamesPath + "/search"
)

// Client talks to the hosted off-chain subname directory.
type Client struct {
	client   *fasthttp.Client
	baseURL  string
	apiKey   string
	timeout  time.Duration
	pageSize int
	logger   *zap.Logger
}

// NewClient creates a directory client.
func NewClient(cfg config.DirectoryConfig, logger *zap.Logger) domainService.SubnameDirectory {
	return newClient(&fasthttp.Client{}, cfg, logger)
}

func newClient(client *fasthttp.Client, cfg config.DirectoryConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Client{
		client:   client,
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		apiKey:   cfg.APIKey,
		timeout:  timeout,
		pageSize: pageSize,
		logger:   logger.Named("DirectoryClient"),
	}
}

// IsAvailable queries the directory's availability flag for fullName.
func (c *Client) IsAvailable(ctx context.Context, fullName string) (bool, error) {
	status, body, err := c.do(ctx, fasthttp.MethodGet, availabilityPath+url.PathEscape(fullName), nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrAvailabilityUnknown, err)
	}
	if status != fasthttp.StatusOK {
		return false, fmt.Errorf("%w: directory returned status %d", domain.ErrAvailabilityUnknown, status)
	}

	flag := gjson.GetBytes(body, "isAvailable")
	if !flag.Exists() {
		flag = gjson.GetBytes(body, "available")
	}
	if !flag.IsBool() {
		return false, fmt.Errorf("%w: directory response has no availability flag", domain.ErrAvailabilityUnknown)
	}
	return flag.Bool(), nil
}

// CreateSubname issues a subname with its text and address records.
func (c *Client) CreateSubname(ctx context.Context, req entity.CreateSubnameRequest) (*entity.SubnameRecord, error) {
	payload, err := json.Marshal(toCreateRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode create request: %v", apperrors.ErrInternal, err)
	}

	status, body, err := c.do(ctx, fasthttp.MethodPost, subnamesPath, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}

	switch {
	case status >= 200 && status < 300:
	case status == fasthttp.StatusConflict:
		if reason := authority.FirstValidationMessage(body); reason != "" {
			return nil, &domain.MintUnavailableError{Reason: reason}
		}
		return nil, fmt.Errorf("%w: %w: %s.%s", domain.ErrNameTaken, apperrors.ErrConflict, req.Label, req.Parent)
	default:
		if err := authority.ClassifyResponse(status, body); err != nil {
			if errors.Is(err, domain.ErrProviderUnreachable) {
				return nil, fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
			}
			return nil, err
		}
	}

	record := entity.SubnameRecord{
		FullName:  req.Label + "." + req.Parent,
		Label:     req.Label,
		Parent:    req.Parent,
		Owner:     req.Owner,
		Texts:     req.Texts,
		Addresses: req.Addresses,
	}
	var raw dto.SubnameRaw
	if len(body) > 0 && json.Unmarshal(body, &raw) == nil && raw.Label != "" {
		record = toDomainSubname(raw)
	}

	c.logger.Info("Subname issued", zap.String("name", record.FullName), zap.String("owner", record.Owner.Hex()))
	return &record, nil
}

// ListByOwner returns one page of the subnames of parent owned by owner. Pages start at 1.
func (c *Client) ListByOwner(ctx context.Context, parent string, owner common.Address, page, size int) (entity.SubnamePage, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = c.pageSize
	}

	q := url.Values{}
	if parent != "" {
		q.Set("parentName", parent)
	}
	q.Set("owner", owner.Hex())
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	status, body, err := c.do(ctx, fasthttp.MethodGet, searchPath+"?"+q.Encode(), nil)
	if err != nil {
		return entity.SubnamePage{}, err
	}
	if status != fasthttp.StatusOK {
		return entity.SubnamePage{}, fmt.Errorf("%w: directory listing returned status %d",
			apperrors.ErrExternalServiceFailure, status)
	}

	var raw dto.SubnamePageRaw
	if err := json.Unmarshal(body, &raw); err != nil {
		return entity.SubnamePage{}, fmt.Errorf("%w: invalid listing response: %v", apperrors.ErrExternalServiceFailure, err)
	}
	if raw.Page == 0 {
		raw.Page = page
	}
	if raw.Size == 0 {
		raw.Size = size
	}
	return toDomainPage(raw), nil
}

// TextRecord returns the value of text record key on fullName.
func (c *Client) TextRecord(ctx context.Context, fullName, key string) (string, error) {
	path := subnamesPath + "/" + url.PathEscape(fullName) + "/texts/" + url.PathEscape(key)
	status, body, err := c.do(ctx, fasthttp.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	switch status {
	case fasthttp.StatusOK:
	case fasthttp.StatusNotFound:
		return "", fmt.Errorf("%w: text record %q on %s", apperrors.ErrNotFound, key, fullName)
	default:
		return "", fmt.Errorf("%w: text lookup returned status %d", apperrors.ErrExternalServiceFailure, status)
	}

	value := gjson.GetBytes(body, "value")
	if !value.Exists() {
		return "", fmt.Errorf("%w: text record %q on %s", apperrors.ErrNotFound, key, fullName)
	}
	return value.String(), nil
}

// do executes one request and returns the status and a copy of the body.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	if c.apiKey != "" {
		req.Header.Set(authority.APIKeyHeader, c.apiKey)
	}
	if body != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(body)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}

	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		c.logger.Warn("Directory request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		if errors.Is(err, fasthttp.ErrTimeout) {
			return 0, nil, fmt.Errorf("%w: directory request timed out after %v", apperrors.ErrTimeout, timeout)
		}
		return 0, nil, fmt.Errorf("%w: directory request failed: %v", apperrors.ErrExternalServiceFailure, err)
	}

	c.logger.Debug("Directory response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("statusCode", resp.StatusCode()),
	)
	return resp.StatusCode(), append([]byte(nil), resp.Body()...), nil
}
