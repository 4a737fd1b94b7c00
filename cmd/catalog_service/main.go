package main

import (
	"context"
	"net/http"
	"os"

	adminService "github.com/ridloal/plant-catalog/internal/admin/service"
	plantAPI "github.com/ridloal/plant-catalog/internal/plant/api"
	"github.com/ridloal/plant-catalog/internal/plant/seed"
	plantService "github.com/ridloal/plant-catalog/internal/plant/service"
	"github.com/ridloal/plant-catalog/internal/plant/storage"
	"github.com/ridloal/plant-catalog/internal/platform/config"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
	"github.com/ridloal/plant-catalog/internal/platform/server"
)

type serviceConfig struct {
	Server  config.ServerConfig
	Storage config.StorageConfig
	Admin   config.AdminConfig
}

// serve is swapped in tests.
var serve = server.Run

func main() {
	// Load Config
	config.Load()
	cfg := serviceConfig{
		Server:  config.LoadServerConfig("5001"),
		Storage: config.LoadStorageConfig(),
		Admin:   config.LoadAdminConfig(),
	}

	if err := run(context.Background(), cfg); err != nil {
		logger.Error("Catalog Service stopped", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg serviceConfig) error {
	logger.Info("Starting Catalog Service with %s storage...", cfg.Storage.Driver)

	store, closeStore, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		logger.Error("Failed to open plant store for Catalog Service", err)
		return err
	}
	defer closeStore()

	if cfg.Storage.Driver == config.StorageDriverMemory {
		n, err := store.ReplaceAll(ctx, seed.Plants())
		if err != nil {
			logger.Error("Failed to seed in-memory plant store", err)
			return err
		}
		logger.Info("Seeded %d plants into the in-memory store", n)
	}

	tokens, err := adminService.NewTokenService(cfg.Admin)
	if err != nil {
		logger.Error("Failed to configure admin tokens", err)
		return err
	}

	var router http.Handler = plantAPI.NewRouter(plantService.NewPlantService(store), tokens)
	return serve("Catalog Service", cfg.Server.Port, router)
}
