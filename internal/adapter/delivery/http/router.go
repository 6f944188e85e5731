package http

import (
	"fmt"
	"time"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	mfasthttp "github.com/ulule/limiter/v3/drivers/middleware/fasthttp"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	handler "subname-minter/internal/adapter/handler/http"
)

// DefaultRateLimit applies to session action routes when none is configured.
const DefaultRateLimit = "30-M"

// RegisterRoutes sets up the API routes, health and metrics. Session actions are rate limited
// per client IP with rateLimit in limiter's "<limit>-<period>" format.
func RegisterRoutes(r *router.Router, h *handler.MintHandler, gatherer prometheus.Gatherer, rateLimit string, logger *zap.Logger) error {
	logger.Info("Setting up application-specific routes...")

	limited, err := rateLimiter(rateLimit)
	if err != nil {
		return err
	}

	r.GET("/networks", h.GetNetworks)
	r.GET("/networks/{id}/rpcs", h.GetNetworkRPCs)

	r.POST("/sessions", limited(h.OpenSession))
	r.GET("/sessions/{id}", h.GetSession)
	r.GET("/sessions/{id}/search", limited(h.Search))
	r.POST("/sessions/{id}/mint", limited(h.Mint))

	r.GET("/subnames", h.GetSubnames)
	r.GET("/names/{name}/text/{key}", h.GetTextRecord)

	logger.Info("Setting up health check and metrics routes...")
	r.GET("/health", h.Health)
	if gatherer != nil {
		r.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	logger.Info("All routes registered.")
	return nil
}

// LoggingMiddleware logs every request with its status and duration.
func LoggingMiddleware(next fasthttp.RequestHandler, logger *zap.Logger) fasthttp.RequestHandler {
	logger = logger.Named("HTTP")
	return func(ctx *fasthttp.RequestCtx) {
		started := time.Now()
		next(ctx)
		logger.Info("Request handled",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("uri", ctx.RequestURI()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("duration", time.Since(started)),
		)
	}
}

func rateLimiter(formatted string) (func(fasthttp.RequestHandler) fasthttp.RequestHandler, error) {
	if formatted == "" {
		formatted = DefaultRateLimit
	}
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	middleware := mfasthttp.NewMiddleware(limiter.New(memory.NewStore(), rate))
	return middleware.Handle, nil
}
