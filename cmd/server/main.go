package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/nicholasjackson/env"

	"github.com/light-bringer/discount-service/internal/services"
)

var (
	bindAddress = env.String("BIND_ADDRESS", false, ":8080", "Bind address for the HTTP server")
	logLevel    = env.String("LOG_LEVEL", false, "info", "Log level [trace, debug, info, warn, error]")
	spannerDB   = env.String("SPANNER_DATABASE", false,
		"projects/test-project/instances/dev-instance/databases/discount-db",
		"Full Spanner database path")
	strictListing = env.Bool("STRICT_LISTING", false, false,
		"Fail country listings when a row cannot be reconstructed instead of dropping it")
	rateLimit = env.Float64("RATE_LIMIT", false, 100,
		"Requests per second allowed before 429s; 0 disables limiting")
	rateBurst = env.Int("RATE_BURST", false, 20, "Rate limiter burst size")
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := env.Parse(); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "discount-service",
		Level: hclog.LevelFromString(*logLevel),
	})

	logger.Info("starting discount service",
		"spanner_database", *spannerDB,
		"bind_address", *bindAddress,
	)

	ctx := context.Background()
	serviceOpts, err := services.NewServiceOptions(ctx, services.Config{
		SpannerDB:     *spannerDB,
		StrictListing: *strictListing,
		RatePerSecond: *rateLimit,
		RateBurst:     *rateBurst,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      serviceOpts.Router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("shutting down gracefully", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	return nil
}
