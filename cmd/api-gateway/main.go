// Package main is the entry point of the asphalt estimator HTTP service.
// It serves the calculator page and the JSON estimate API.
//
// 12-Factor App compilance:
//   - III. Config: Configuration via environment variables
//   - VI. Processes: Stateless processes
//   - VII. Port Binding: Self-contained HTTP server
//   - IX. Disposability: Graceful shutdown
//   - XI. Logs: Structured logging to stdout
//
// Usage:
//
//	go run ./cmd/api-gateway [--config|-c config.yaml]
//
// Environment Variables:
//
//	ASPHALT_APP_ENVIRONMENT - Deployment environment (development, staging, production)
//	ASPHALT_SERVER_PORT     - HTTP server port (default: 8080), PORT is also honored
//	ASPHALT_ESTIMATOR_DENSITY - Compacted mix density in lbs/ft³ (default: 145)
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/application/port"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/bootstrap"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/config"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/infrastructure/metrics"
	"github.com/cosmiccrafter-maker/asphalt-calculator/internal/interfaces/http/handler"
	"github.com/cosmiccrafter-maker/asphalt-calculator/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	configFile, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Fatal("Invalid arguments", "error", err)
	}

	// Load configuration
	cfg := config.MustLoad(configFile)

	// Initialize logger
	log, err := bootstrap.NewLogger(cfg, nil)
	if err != nil {
		logger.Fatal("Failed to initialize logger", "error", err)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("Starting Asphalt Estimator",
		"version", version,
		"environment", cfg.App.Environment,
		"density", cfg.Estimator.Density,
	)

	// Create context that listens for shutdowns signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create a logger adapter that implements port.Logger
	logAdapter := bootstrap.PortLogger(log)

	var (
		prom        *metrics.Prometheus
		metricsSink port.Metrics = metrics.Nop{}
	)
	if cfg.Metrics.Enabled {
		prom = metrics.NewPrometheus(cfg.Metrics.Namespace)
		metricsSink = prom
	}

	svc, err := bootstrap.NewEstimateService(cfg, logAdapter, metricsSink)
	if err != nil {
		log.Fatal("Failed to create estimate service", "error", err)
	}

	estimates, err := handler.NewEstimateHandler(svc, bootstrap.Formatter(cfg.Estimator), logAdapter, cfg.Estimator.MaxSections, version)
	if err != nil {
		log.Fatal("Failed to create estimate handler", "error", err)
	}

	r := handler.NewRouter(handler.RouterConfig{
		Config:    cfg,
		Version:   version,
		Logger:    logAdapter,
		Estimates: estimates,
		Health:    handler.NewHealthHandler(version),
		Metrics:   prom,
	})

	// ============================================================================
	// HTTP server
	// ============================================================================

	addr := cfg.Server.Address()
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	log.Info("Shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server shutdown complete")
}

// parseFlags returns the configuration file named by --config/-c.
func parseFlags(args []string) (string, error) {
	fs := pflag.NewFlagSet("api-gateway", pflag.ContinueOnError)
	configFile := fs.StringP("config", "c", "", "Path to configuration file")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *configFile, nil
}
