package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/symptom-triage-server/internal/api"
	"github.com/symptom-triage-server/internal/cache"
	"github.com/symptom-triage-server/internal/catalog"
	"github.com/symptom-triage-server/internal/config"
	"github.com/symptom-triage-server/internal/domain"
	"github.com/symptom-triage-server/internal/service"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := newLogger(cfg.Logging)

	// A malformed catalog must abort startup, never serve degraded results.
	store := catalog.NewStore(catalog.Default(), logger)
	logger.WithField("records", store.Snapshot().Len()).Info("Condition catalog loaded")

	resultCache, err := buildResultCache(configManager, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize result cache")
	}

	analyzer := service.NewAnalyzerService(store, *configManager.GetScoringConfig(), resultCache, logger)
	server := api.NewServer(configManager, analyzer, store, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Starting symptom triage server")

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}

	logger.Info("Server stopped")
}

// newLogger builds the process logger from logging configuration.
func newLogger(cfg domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.Output == "stderr" {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(os.Stdout)
	}

	return logger
}

// buildResultCache wires the two-tier cache; Redis is attached only when a
// URL is configured.
func buildResultCache(configManager *config.Manager, logger *logrus.Logger) (*cache.ResultCache, error) {
	cacheCfg := configManager.GetCacheConfig()
	if !cacheCfg.Enabled {
		return nil, nil
	}

	var redisClient *redis.Client
	if cacheCfg.RedisURL != "" {
		opts, err := redis.ParseURL(cacheCfg.RedisURL)
		if err != nil {
			return nil, err
		}
		opts.PoolSize = cacheCfg.PoolSize
		opts.PoolTimeout = cacheCfg.PoolTimeout
		redisClient = redis.NewClient(opts)
	}

	return cache.New(cacheCfg.MemorySize, redisClient, cacheCfg.DefaultTTL, logger)
}
