package http

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"subname-minter/internal/application/port"
	"subname-minter/internal/domain"
)

type MintHandler struct {
	service port.MintService
	logger  *zap.Logger
}

func NewMintHandler(service port.MintService, logger *zap.Logger) *MintHandler {
	return &MintHandler{
		service: service,
		logger:  logger.Named("MintHandler"),
	}
}

// Health reports liveness.
func (h *MintHandler) Health(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBodyString("OK")
}

// GetNetworks lists the chain registry.
func (h *MintHandler) GetNetworks(ctx *fasthttp.RequestCtx) {
	networks := h.service.Networks()
	views := make([]NetworkView, 0, len(networks))
	for _, n := range networks {
		views = append(views, toNetworkView(n))
	}
	h.writeJSON(ctx, fasthttp.StatusOK, views)
}

// GetNetworkRPCs returns the health of every RPC endpoint of a network. The details are
// returned even when none of the endpoints work.
func (h *MintHandler) GetNetworkRPCs(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	details, err := h.service.CheckedRPCs(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNoRPCsAvailable) {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, details)
}

// OpenSession starts a session. An empty body uses the service's own wallet.
func (h *MintHandler) OpenSession(ctx *fasthttp.RequestCtx) {
	var req port.ConnectRequest
	if body := ctx.PostBody(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			h.writeError(ctx, domain.ErrInvalidInput)
			return
		}
	}

	session, err := h.service.OpenSession(ctx, req)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusCreated, session)
}

func (h *MintHandler) GetSession(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	session, err := h.service.Session(ctx, id)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, session)
}

// Search checks ?label= and returns its suggestions. An unknown availability is still a 200
// with the error attached, so the caller can render the result and the banner together.
func (h *MintHandler) Search(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	label := string(ctx.QueryArgs().Peek("label"))

	result, err := h.service.Search(ctx, id, label)
	if err != nil && !errors.Is(err, domain.ErrAvailabilityUnknown) {
		h.writeError(ctx, err)
		return
	}

	view := SearchView{SearchResult: result}
	if err != nil {
		ev := toErrorView(err)
		view.Error = &ev
	}
	h.writeJSON(ctx, fasthttp.StatusOK, view)
}

// Mint runs one mint attempt. The outcome is returned on failure too, with the status code
// taken from its kind.
func (h *MintHandler) Mint(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)

	var cmd port.MintCommand
	if err := json.Unmarshal(ctx.PostBody(), &cmd); err != nil {
		h.writeError(ctx, domain.ErrInvalidInput)
		return
	}

	outcome, err := h.service.Mint(ctx, id, cmd)
	if err != nil {
		h.logger.Info("Mint attempt failed",
			zap.String("session", id), zap.String("label", cmd.Label), zap.Error(err))
		h.writeJSON(ctx, statusFor(err), outcome)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, outcome)
}

// GetSubnames lists directory subnames by ?owner= and ?page=.
func (h *MintHandler) GetSubnames(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	owner := string(args.Peek("owner"))

	page := 1
	if raw := args.Peek("page"); len(raw) > 0 {
		p, err := strconv.Atoi(string(raw))
		if err != nil || p < 1 {
			h.writeError(ctx, domain.ErrInvalidInput)
			return
		}
		page = p
	}

	result, err := h.service.SubnamesByOwner(ctx, owner, page)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, result)
}

func (h *MintHandler) GetTextRecord(ctx *fasthttp.RequestCtx) {
	name, _ := ctx.UserValue("name").(string)
	key, _ := ctx.UserValue("key").(string)

	value, err := h.service.TextRecord(ctx, name, key)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	h.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"name": name, "key": key, "value": value})
}

func (h *MintHandler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status := statusFor(err)
	if status >= fasthttp.StatusInternalServerError {
		h.logger.Error("Request failed", zap.ByteString("uri", ctx.RequestURI()), zap.Error(err))
	}
	h.writeJSON(ctx, status, toErrorView(err))
}

func (h *MintHandler) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// statusFor maps an error onto its HTTP status code.
func statusFor(err error) int {
	if errors.Is(err, domain.ErrNoRPCsAvailable) {
		return fasthttp.StatusServiceUnavailable
	}
	switch domain.Classify(err) {
	case domain.KindNone:
		return fasthttp.StatusOK
	case domain.KindInvalidInput:
		return fasthttp.StatusBadRequest
	case domain.KindWalletNotReady:
		return fasthttp.StatusPreconditionFailed
	case domain.KindNotFound:
		return fasthttp.StatusNotFound
	case domain.KindBusy, domain.KindStaleRequest:
		return fasthttp.StatusConflict
	case domain.KindMintUnavailable, domain.KindSimulationReverted:
		return fasthttp.StatusUnprocessableEntity
	case domain.KindAvailabilityUnknown, domain.KindProviderUnreachable, domain.KindSubmissionFailed:
		return fasthttp.StatusBadGateway
	default:
		return fasthttp.StatusInternalServerError
	}
}
