package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"wellmade-relay/internal/config"
	"wellmade-relay/internal/handlers"
	"wellmade-relay/internal/logger"
	"wellmade-relay/internal/router"
	"wellmade-relay/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Initialize Logger ────
	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("✗ Logger initialization failed: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("environment variables loaded")

	// ──── Step 3: Initialize Relay ────
	relay := services.NewRelayService(
		services.DefaultRelayPolicy(),
		services.NewUpstreamClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey),
		zlog,
	)

	// ──── Step 4: Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(relay, zlog)
	healthHandler := handlers.NewHealthHandler(cfg.Env)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, healthHandler, cfg.AllowedOrigin)

	// No WriteTimeout: the upstream call has no deadline of its own.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		zlog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	zlog.Info("server running", zap.String("port", cfg.Port))
	zlog.Info("CORS allowed from", zap.String("origin", cfg.AllowedOrigin))
	zlog.Info("health check", zap.String("url", fmt.Sprintf("http://localhost:%s/api/health", cfg.Port)))

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		zlog.Fatal("server error", zap.Error(err))
	}
}
