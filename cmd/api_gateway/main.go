package main

import (
	"os"

	"github.com/ridloal/plant-catalog/internal/gateway"
	"github.com/ridloal/plant-catalog/internal/platform/config"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
	"github.com/ridloal/plant-catalog/internal/platform/server"
)

func main() {
	config.Load()
	cfg := config.LoadGatewayConfig()
	logger.Info("Starting API Gateway on port %s", cfg.ListenPort)

	handler, err := gateway.NewHandler(gateway.Routes(cfg))
	if err != nil {
		logger.Error("Failed to configure API Gateway", err)
		os.Exit(1)
	}

	if err := server.Run("API Gateway", ":"+cfg.ListenPort, handler); err != nil {
		logger.Error("API Gateway failed to start or crashed", err)
		os.Exit(1)
	}
}
