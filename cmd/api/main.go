package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	delivery "subname-minter/internal/adapter/delivery/http"
	handler "subname-minter/internal/adapter/handler/http"
	"subname-minter/internal/app"
	"subname-minter/internal/config"
	"subname-minter/internal/logger"
)

func main() {
	cfgPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	// --- Configuration ---
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", *cfgPath, err)
	}

	// --- Logger ---
	zl, err := logger.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Dependencies ---
	zl.Info("Initializing dependencies...")
	minter, err := app.New(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("Failed to initialize minter", zap.Error(err))
	}
	defer minter.Close()

	go minter.Networks.Run(ctx, minter.Network.ID)

	// --- HTTP Router & Server ---
	r := router.New()
	h := handler.NewMintHandler(minter.Service, zl)
	if err := delivery.RegisterRoutes(r, h, minter.Registry, cfg.Server.RateLimit, zl); err != nil {
		zl.Fatal("Failed to register routes", zap.Error(err))
	}

	server := &fasthttp.Server{
		Handler: delivery.LoggingMiddleware(r.Handler, zl),
		Name:    cfg.App.Name,
	}

	serverAddr := ":" + cfg.Server.Port
	errCh := make(chan error, 1)
	go func() {
		zl.Info("Starting HTTP server", zap.String("address", serverAddr))
		errCh <- server.ListenAndServe(serverAddr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	case <-ctx.Done():
		zl.Info("Shutting down HTTP server")
		if err := server.Shutdown(); err != nil {
			zl.Error("Server shutdown failed", zap.Error(err))
		}
	}
}
