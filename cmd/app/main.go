package main

import (
	"botforge/internal/config"
	"botforge/pkg/keyval"
	"botforge/pkg/log"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	keyValue := keyval.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithKeyValue(keyValue),
		config.WithStore(),
		config.WithMiddleware(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	persister := server.Persister()

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	if err := persister.Load(loadCtx); err != nil {
		logger.Fatalf("Error restoring store: %v", err)
	}
	cancelLoad()
	persister.Start()

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(); err != nil {
		logger.Errorf("Error shutting down server: %v", err)
	}
	if err := persister.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error flushing store on shutdown: %v", err)
	}

	logger.Info("Shutdown complete")
}
