package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/media-digest/internal/config"
	"github.com/nguyentantai21042004/media-digest/internal/fetcher"
	"github.com/nguyentantai21042004/media-digest/internal/llm"
	"github.com/nguyentantai21042004/media-digest/internal/logger"
	"github.com/nguyentantai21042004/media-digest/internal/pipeline"
	"github.com/nguyentantai21042004/media-digest/internal/summarizer"
	"github.com/nguyentantai21042004/media-digest/internal/translator"
	"github.com/nguyentantai21042004/media-digest/internal/watcher"
	"github.com/nguyentantai21042004/media-digest/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	filePath := flag.String("file", "", "digest a single transcript file and exit")
	mediaURL := flag.String("url", "", "digest a single media URL and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	client, err := llm.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	if err != nil {
		log.Error(ctx, "Failed to create model client: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	fetch := fetcher.New(cfg, exec, log)
	summ := summarizer.New(cfg, client, log)
	trans := translator.New(cfg, client, log)
	pipe := pipeline.New(cfg, fetch, summ, trans, log)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Media Digest Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "Summary language: %s", cfg.Summary.Language)
	log.Info(ctx, "Chunk size: %d, overlap: %d, workers: %d",
		cfg.Summary.ChunkSize, cfg.Summary.ChunkOverlap, cfg.Summary.MaxWorkers)

	// One-shot modes
	if *filePath != "" {
		if err := pipe.ProcessFile(ctx, *filePath); err != nil {
			log.Error(ctx, "Digest failed: %v", err)
			os.Exit(1)
		}
		return
	}
	if *mediaURL != "" {
		if err := pipe.ProcessURL(ctx, *mediaURL); err != nil {
			log.Error(ctx, "Digest failed: %v", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode
	w, err := watcher.New(cfg.Paths.Input, pipe.ProcessFile, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Media Digest Pipeline stopped")
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	if cfg.Logging.File != "" {
		return logger.NewWithFile(cfg.Logging.Level, cfg.Logging.File)
	}
	return logger.New(cfg.Logging.Level), nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
