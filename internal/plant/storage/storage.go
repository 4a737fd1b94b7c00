package storage

import (
	"context"
	"fmt"

	"github.com/ridloal/plant-catalog/internal/plant/repository"
	"github.com/ridloal/plant-catalog/internal/platform/config"
	"github.com/ridloal/plant-catalog/internal/platform/database"
	"github.com/ridloal/plant-catalog/internal/platform/logger"
)

// Open connects the configured catalog store. The returned close function
// releases the connection and is never nil.
func Open(ctx context.Context, cfg config.StorageConfig) (repository.PlantStore, func(), error) {
	switch cfg.Driver {
	case config.StorageDriverPostgres:
		db, err := database.Connect(cfg.Postgres.Driver, cfg.Postgres.DSN)
		if err != nil {
			return nil, func() {}, err
		}
		if cfg.AutoMigrate {
			if _, err := database.Migrate(ctx, db); err != nil {
				db.Close()
				return nil, func() {}, fmt.Errorf("auto-migrate failed: %w", err)
			}
		}
		return repository.NewPostgresPlantRepository(db), func() { db.Close() }, nil

	case config.StorageDriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, func() {}, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("Failed to disconnect from MongoDB", err)
			}
		}
		store, err := repository.NewMongoPlantRepository(ctx, client.Database(cfg.Mongo.Database))
		if err != nil {
			closeFn()
			return nil, func() {}, err
		}
		return store, closeFn, nil

	case config.StorageDriverMemory:
		logger.Warn("Using in-memory plant store; data is lost on restart")
		return repository.NewMemoryPlantRepository(), func() {}, nil
	}
	return nil, func() {}, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
