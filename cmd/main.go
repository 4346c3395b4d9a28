package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/katiamach/xray-contours-api/internal/api"
	"github.com/katiamach/xray-contours-api/internal/config"
	"github.com/katiamach/xray-contours-api/internal/logger"
)

func main() {
	// .env is optional, the environment wins over it
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %v", err))
	}

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = api.RunAPI(ctx, cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run contours api: %v", err))
	}
}
