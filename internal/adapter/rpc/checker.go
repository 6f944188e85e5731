package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"subname-minter/internal/domain/entity"
	domainService "subname-minter/internal/domain/service"
	"subname-minter/internal/pkg/apperrors"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/websocket"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.RPCChecker = (*Checker)(nil)

// ErrChainMismatch is returned when an endpoint answers for a different chain than expected.
var ErrChainMismatch = errors.New("rpc serves a different chain")

const defaultTimeout = 10 * time.Second

// Checker implements the domainService.RPCChecker interface.
type Checker struct {
	client *fasthttp.Client
	logger *zap.Logger
}

// NewChecker creates a new RPC checker instance.
func NewChecker(logger *zap.Logger) domainService.RPCChecker {
	return newChecker(&fasthttp.Client{ReadTimeout: defaultTimeout}, logger)
}

func newChecker(client *fasthttp.Client, logger *zap.Logger) *Checker {
	return &Checker{
		client: client,
		logger: logger.Named("RPCCheckerAdapter"),
	}
}

// checkPayload asks the node which chain it serves.
var checkPayload = []byte(`{"jsonrpc":"2.0","method":"eth_chainId","params":[],"id":1}`)

// JSONRPCResponse defines the basic structure for a JSON-RPC response.
type JSONRPCResponse struct {
	ID      interface{}     `json:"id"`
	Jsonrpc string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *JSONRPCError   `json:"error,omitempty"`
}

// JSONRPCError defines the structure for a JSON-RPC error.
type JSONRPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// CheckRPC probes rpcURL over its own protocol and verifies it reports chainID.
// A zero chainID skips the chain comparison.
func (c *Checker) CheckRPC(
	ctx context.Context,
	rpcURL entity.RPCURL,
	chainID uint64,
) (isWorking bool, latency time.Duration, err error) {
	startTime := time.Now()
	rawURL := rpcURL.String()

	var body []byte
	switch rpcURL.Protocol() {
	case entity.ProtocolWS, entity.ProtocolWSS:
		body, err = c.checkWS(ctx, rawURL)
	case entity.ProtocolHTTP, entity.ProtocolHTTPS:
		body, err = c.checkHTTP(ctx, rawURL)
	default:
		c.logger.Warn("Skipping check for unsupported protocol", zap.String("url", rawURL))
		return false, 0, fmt.Errorf("%w: unsupported protocol in URL %s", apperrors.ErrInvalidInput, rawURL)
	}
	latency = time.Since(startTime)
	if err != nil {
		return false, latency, err
	}

	served, err := c.parseChainID(rawURL, body)
	if err != nil {
		return false, latency, err
	}
	if chainID != 0 && served != chainID {
		c.logger.Debug("RPC serves unexpected chain",
			zap.String("url", rawURL),
			zap.Uint64("expected", chainID),
			zap.Uint64("served", served),
		)
		return false, latency, fmt.Errorf("%w: %s reports chain %d, expected %d", ErrChainMismatch, rawURL, served, chainID)
	}
	return true, latency, nil
}

// requestTimeout narrows the client timeout to the context deadline.
func (c *Checker) requestTimeout(ctx context.Context) time.Duration {
	timeout := c.client.ReadTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && (timeout <= 0 || remaining < timeout) {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return timeout
}

// checkHTTP performs the JSON-RPC call over HTTP/HTTPS and returns the response body.
func (c *Checker) checkHTTP(ctx context.Context, rpcURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rpcURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(checkPayload)

	timeout := c.requestTimeout(ctx)
	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			c.logger.Debug("HTTP RPC check timed out",
				zap.String("url", rpcURL),
				zap.Duration("timeout", timeout),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: http request to %s timed out after %v: %v",
				apperrors.ErrTimeout, rpcURL, timeout, err,
			)
		}
		c.logger.Debug("HTTP RPC check request failed", zap.String("url", rpcURL), zap.Error(err))
		return nil, fmt.Errorf("%w: http request to %s failed: %v",
			apperrors.ErrExternalServiceFailure, rpcURL, err,
		)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Debug("HTTP RPC check returned non-OK status",
			zap.String("url", rpcURL),
			zap.Int("statusCode", resp.StatusCode()),
		)
		return nil, fmt.Errorf("%w: rpc %s returned non-OK http status: %d",
			apperrors.ErrExternalServiceFailure, rpcURL, resp.StatusCode(),
		)
	}

	return append([]byte(nil), resp.Body()...), nil
}

// checkWS performs the JSON-RPC call over WS/WSS and returns the response message.
func (c *Checker) checkWS(ctx context.Context, rpcURL string) ([]byte, error) {
	timeout := c.requestTimeout(ctx)
	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: timeout,
	}

	conn, _, err := dialer.DialContext(ctx, rpcURL, nil)
	if err != nil {
		c.logger.Debug("WS dial failed", zap.String("url", rpcURL), zap.Error(err))
		return nil, wsError(ctx, "dial to", rpcURL, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(timeout))
	_ = conn.SetReadDeadline(time.Now().Add(timeout))

	if err := conn.WriteMessage(websocket.TextMessage, checkPayload); err != nil {
		c.logger.Debug("WS write message failed", zap.String("url", rpcURL), zap.Error(err))
		return nil, wsError(ctx, "write to", rpcURL, err)
	}

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.logger.Debug("WS read message failed", zap.String("url", rpcURL), zap.Error(err))
		return nil, wsError(ctx, "read from", rpcURL, err)
	}

	c.logger.Debug("WS received response", zap.String("url", rpcURL), zap.ByteString("body", message))
	return message, nil
}

func wsError(ctx context.Context, op, rpcURL string, err error) error {
	if errors.Is(context.Cause(ctx), context.DeadlineExceeded) {
		return fmt.Errorf("%w: ws %s %s timed out: %v", apperrors.ErrTimeout, op, rpcURL, err)
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: ws %s %s timed out: %v", apperrors.ErrTimeout, op, rpcURL, err)
	}
	return fmt.Errorf("%w: ws %s %s failed: %v", apperrors.ErrExternalServiceFailure, op, rpcURL, err)
}

// parseChainID validates a JSON-RPC response and decodes its hex chain id result.
func (c *Checker) parseChainID(rpcURL string, body []byte) (uint64, error) {
	var rpcResp JSONRPCResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		c.logger.Debug("RPC check failed to unmarshal JSON response",
			zap.String("url", rpcURL),
			zap.ByteString("body", body),
			zap.Error(err),
		)
		return 0, fmt.Errorf("%w: rpc %s returned invalid JSON response: %v",
			apperrors.ErrExternalServiceFailure, rpcURL, err,
		)
	}

	if rpcResp.Error != nil {
		c.logger.Debug("RPC check returned JSON-RPC error",
			zap.String("url", rpcURL),
			zap.Int("errorCode", rpcResp.Error.Code),
			zap.String("errorMessage", rpcResp.Error.Message),
		)
		return 0, fmt.Errorf("%w: rpc %s returned json-rpc error: %d %s",
			apperrors.ErrExternalServiceFailure, rpcURL, rpcResp.Error.Code, rpcResp.Error.Message,
		)
	}

	if rpcResp.Jsonrpc != "2.0" || rpcResp.Result == nil {
		return 0, fmt.Errorf("%w: rpc %s returned invalid JSON-RPC structure",
			apperrors.ErrExternalServiceFailure, rpcURL,
		)
	}

	var hexID string
	if err := json.Unmarshal(rpcResp.Result, &hexID); err != nil {
		return 0, fmt.Errorf("%w: rpc %s returned non-string chain id: %v",
			apperrors.ErrExternalServiceFailure, rpcURL, err,
		)
	}
	id, err := hexutil.DecodeUint64(hexID)
	if err != nil {
		return 0, fmt.Errorf("%w: rpc %s returned malformed chain id %q: %v",
			apperrors.ErrExternalServiceFailure, rpcURL, hexID, err,
		)
	}
	return id, nil
}
