package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Evgen-Mutagen/go-cost-manager/internal/app"
	"github.com/Evgen-Mutagen/go-cost-manager/internal/util/logger"
)

func main() {
	cfg, err := app.NewConfigFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	store, err := app.OpenStore(cfg, logger.Log)
	if err != nil {
		logger.Log.Fatal("Store initialization failed", zap.Error(err))
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, store, logger.Log)
	if err := application.Run(ctx); err != nil {
		logger.Log.Error("Server failed", zap.Error(err))
	}
}
