package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/searchlite/searchlite/api"
	"github.com/searchlite/searchlite/config"
	"github.com/searchlite/searchlite/internal/cache"
	"github.com/searchlite/searchlite/internal/engine"
	"github.com/searchlite/searchlite/internal/history"
	"github.com/searchlite/searchlite/internal/storage"
	"github.com/searchlite/searchlite/services"
)

func main() {
	var (
		help       = flag.Bool("help", false, "Show help message")
		configPath = flag.String("config", "", "Path to YAML config file (defaults apply when omitted)")
		port       = flag.Int("port", 0, "Port to run the server on (overrides config)")
	)
	flag.Parse()

	if *help {
		fmt.Printf("searchlite - a compact full-text search engine with autocomplete and typo correction\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	setupLogging(cfg.Logging)
	logger := slog.Default()

	historyStore, err := history.Open(cfg.History.Path)
	if err != nil {
		logger.Error("failed to open history store", "path", cfg.History.Path, "error", err)
		os.Exit(1)
	}
	defer historyStore.Close()

	// Caching is an optimization: an unreachable Redis means slower
	// requests, not a dead server.
	var queryCache services.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("redis unavailable, running without result cache", "addr", cfg.Redis.Addr, "error", err)
		} else {
			defer redisCache.Close()
			queryCache = redisCache
		}
	}

	source := storage.NewFileSource(cfg.Storage.DocumentsPath)
	eng, err := engine.New(source, queryCache, historyStore, cfg.Redis.CacheTTL.Std())
	if err != nil {
		logger.Error("failed to start engine", "error", err)
		os.Exit(1)
	}

	router := gin.Default()
	api.SetupRoutes(router, eng)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("starting server", "addr", addr)
	if err := router.Run(addr); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func setupLogging(cfg config.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
