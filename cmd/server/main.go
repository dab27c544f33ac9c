package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"movielookup/internal/api"
	"movielookup/internal/config"
	"movielookup/internal/detail"
	"movielookup/internal/feed"
	"movielookup/internal/storage"
	"movielookup/internal/tmdb"
	"movielookup/internal/translate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel)

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Error("create data directory", "path", dir, "error", err)
			os.Exit(1)
		}
	}

	store, err := storage.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Error("open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	catalog := tmdb.New(cfg.CatalogBaseURL, cfg.CatalogAPIKey, cfg.Language, nil)
	translator := translate.New(cfg.TranslateBaseURL, nil)

	feedCtrl := feed.New(catalog, store, log)
	detailCtrl := detail.New(catalog, translator, "en", cfg.TranslateTarget, log)

	srv := api.New(feedCtrl, detailCtrl, store, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := feedCtrl.Initialize(ctx); err != nil {
		// The feed starts empty; a POST /movies/refresh retries.
		log.Warn("initial feed load failed", "error", err)
	}

	log.Info("starting server", "addr", cfg.ListenAddr)

	if err := srv.Run(ctx, cfg.ListenAddr); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
