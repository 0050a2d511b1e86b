package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/example/minimart/pkg/auth"
	"github.com/example/minimart/pkg/config"
	"github.com/example/minimart/pkg/store"
	"github.com/example/minimart/server"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting minimart API",
		zap.Int("port", cfg.Server.Port),
		zap.String("host", cfg.Server.Host))

	// Load document store; a missing or corrupt snapshot is fatal.
	st, err := store.Open(cfg.Store.Path, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.String("path", cfg.Store.Path), zap.Error(err))
	}

	tokens := auth.NewService(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	srv := server.New(cfg, logger, st, tokens)
	srv.SetupRoutes()

	// Start server in goroutine
	srvErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			srvErr <- err
		}
	}()

	logger.Info("Server started successfully")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-srvErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
