package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LAXMAN-NALLA/document-analysis-api/internal/analyzer"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/config"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/extractor"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/handlers"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/ocr"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/router"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/services"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/utils"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// OCR fallback client; runs disabled when AWS credentials are absent
	ocrClient, err := ocr.NewTextractClient(context.Background(), ocr.Options{
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Region:          cfg.AWSRegion,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize OCR client", "error", err)
	}

	// Worker pool for blocking extraction work
	pool := worker.NewPool(cfg.ExtractionWorkers)
	defer pool.Close()

	coordinator := extractor.NewCoordinator(ocrClient, pool, logger)

	// Generation backend; a missing key degrades analysis to the
	// fallback record instead of refusing to start
	var gen analyzer.Generator
	if cfg.OpenRouterAPIKey != "" {
		gen = analyzer.NewOpenRouterGenerator(cfg.OpenRouterAPIKey, cfg.OpenRouterModel, logger)
	} else {
		logger.Warn("OPENROUTER_API_KEY not set, analysis will return fallback records")
	}
	docAnalyzer := analyzer.New(gen, logger)

	// Orchestrator and HTTP surface
	docService := services.NewService(coordinator, docAnalyzer, logger)
	docHandler := handlers.NewDocumentHandler(docService, cfg.MaxFileSize, logger)
	handler := router.NewRouter(docHandler, cfg.CORSOrigins, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
