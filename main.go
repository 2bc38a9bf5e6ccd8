package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nijaru/yt-digest/config"
	"github.com/nijaru/yt-digest/handlers/api"
	"github.com/nijaru/yt-digest/logger"
	"github.com/nijaru/yt-digest/services/analysis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	for _, warning := range cfg.Warnings() {
		appLogger.Warn(warning)
	}

	analysisService, err := analysis.NewFromConfig(cfg, appLogger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize analysis service")
	}

	server := api.NewServer(cfg,
		api.WithLogger(appLogger),
		api.WithAnalysisService(analysisService),
	)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-shutdownChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			appLogger.WithError(err).Error("Server shutdown error")
		}
	}()

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		appLogger.WithError(err).Fatal("Server error")
	}
	<-done
}
