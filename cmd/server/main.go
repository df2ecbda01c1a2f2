// @title LexAsta API
// @version 1.0
// @description Analysis of Italian foreclosure-sale notices: document intake, per-document extraction and a unified report.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "lexasta/docs"
	"lexasta/internal/config"
	"lexasta/internal/extraction"
	"lexasta/internal/handler"
	"lexasta/internal/logger"
	"lexasta/internal/model"
	_ "lexasta/internal/model/claude"
	_ "lexasta/internal/model/gemini"
	_ "lexasta/internal/model/openai"
	"lexasta/internal/pipeline"
	"lexasta/internal/port"
	"lexasta/internal/reconcile"
	"lexasta/internal/recovery"
	"lexasta/internal/router"
	"lexasta/internal/service"
	"lexasta/internal/storage/noop"
	s3storage "lexasta/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server.fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	log := slog.Default()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Model client
	client, err := model.NewFromConfig(&cfg.Parser)
	if err != nil {
		return fmt.Errorf("failed to initialize model client: %w", err)
	}
	var providers []string
	for _, p := range cfg.Parser.Providers() {
		providers = append(providers, p.Provider)
	}

	// Archive storage
	var storage port.ObjectStorage = noop.New()
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Pipeline
	orchestrator := pipeline.NewOrchestrator(
		recovery.New(cfg.Recovery, log),
		extraction.New(client, cfg.Extraction, log),
		reconcile.NewEngine(client, cfg.Reconcile, cfg.Extraction, log),
		pipeline.LogObserver{Log: log},
		log,
	)

	// Services
	queue := service.NewAnalysisQueue(cfg.Worker.QueueSize)
	batchSvc := service.NewBatchService(orchestrator, queue, storage, cfg.Upload, cfg.S3, log)
	worker := service.NewAnalysisWorker(queue, batchSvc, cfg.Worker, log)

	// Handlers
	r := router.Setup(cfg, log,
		handler.NewBatchHandler(batchSvc, cfg.Upload),
		handler.NewReportHandler(batchSvc),
		handler.NewHealthHandler(providers),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server.starting",
			"addr", cfg.Server.Port,
			"providers", providers,
			"archive_enabled", storage.Enabled(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			stop()
			wg.Wait()
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("server.shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server.shutdown_failed", "error", err)
	}

	// The worker drains in-flight runs before returning.
	wg.Wait()
	log.Info("server.stopped")
	return nil
}
