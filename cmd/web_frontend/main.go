package main

import (
	"context"
	"os"
	"time"

	"github.com/ridloal/plant-catalog/internal/plant/client"
	"github.com/ridloal/plant-catalog/internal/platform/config"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
	"github.com/ridloal/plant-catalog/internal/platform/server"
	"github.com/ridloal/plant-catalog/internal/web"
)

func main() {
	config.Load()
	cfg := config.LoadWebConfig()

	logger.Info("Starting Web Frontend against %s", cfg.APIBaseURL)

	api := client.NewClient(cfg.APIBaseURL)
	categories := web.NewCategoryCache(api)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := api.HealthCheck(ctx); err != nil {
		logger.Warn("Catalog API not reachable yet: %v", err)
	} else if err := categories.Refresh(ctx); err != nil {
		logger.Warn("Initial category load failed: %v", err)
	}
	cancel()

	if err := categories.StartRefresh(cfg.CategoryRefreshSpec); err != nil {
		logger.Error("Invalid CATEGORY_REFRESH_SPEC", err)
		os.Exit(1)
	}
	defer categories.Stop()

	router := web.NewRouter(api, categories)
	if err := server.Run("Web Frontend", ":"+cfg.ListenPort, router); err != nil {
		logger.Error("Failed to run Web Frontend server", err)
	}
}
