package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkhlegal/legalbrain/internal/api"
	"github.com/pkhlegal/legalbrain/internal/config"
	"github.com/pkhlegal/legalbrain/internal/extract"
	"github.com/pkhlegal/legalbrain/internal/llm"
	"github.com/pkhlegal/legalbrain/internal/pipeline"
	"github.com/pkhlegal/legalbrain/internal/rules"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if !cfg.HasProvider() {
		log.Warn("no LLM provider credential configured; analysis requests will fail")
	}

	// Initialize pipeline collaborators.
	extractor := extract.NewPackExtractor(cfg.OCRFallback)
	stats := llm.NewStats(time.Hour)
	router := llm.NewRouterFromConfig(cfg, stats, log)
	store := rules.NewStore(cfg.RulesPath)
	analyzer := pipeline.NewAnalyzer(extractor, router, store, log)

	// Initialize HTTP server.
	srv := api.NewServer(analyzer, store, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting legalbrain", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
