package cli

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/ridloal/plant-catalog/internal/plant/seed"
	"github.com/ridloal/plant-catalog/internal/plant/storage"
	"github.com/ridloal/plant-catalog/internal/platform/config"
	"github.com/ridloal/plant-catalog/internal/platform/database"
)

const (
	storageFlag       = "storage"
	dbDriverFlag      = "db-driver"
	dsnFlag           = "dsn"
	mongoURIFlag      = "mongo-uri"
	mongoDatabaseFlag = "mongo-database"
)

func postgresFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		dbDriverFlag: &cobraflags.StringFlag{
			Name:  dbDriverFlag,
			Value: config.DefaultCatalogDBDriver,
			Usage: "database/sql driver: pgx or postgres (lib/pq)",
		},
		dsnFlag: &cobraflags.StringFlag{
			Name:  dsnFlag,
			Value: config.DefaultCatalogDSN,
			Usage: "PostgreSQL connection string",
		},
	}
}

var postgresEnv = map[string]string{
	dbDriverFlag: "CATALOG_DB_DRIVER",
	dsnFlag:      "CATALOG_DB_DSN",
}

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded SQL migrations to PostgreSQL",
		Long: `Apply every embedded SQL migration that has not been recorded in
schema_migrations yet. Already applied versions are skipped.`,
		Args: cobra.NoArgs,
		RunE: migrateCommand,
	}
	register(cmd, postgresFlags(), postgresEnv)
	return cmd
}

func migrateCommand(cmd *cobra.Command, _ []string) error {
	v, err := settings(cmd)
	if err != nil {
		return err
	}

	db, err := database.Connect(v.GetString(dbDriverFlag), v.GetString(dsnFlag))
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := database.Migrate(cmd.Context(), db)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s)\n", applied)
	return nil
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace every plant with the bundled dataset",
		Long: `Delete all plants and insert the bundled dataset. PostgreSQL is
migrated first so the table exists.`,
		Args: cobra.NoArgs,
		RunE: seedCommand,
	}

	flags := postgresFlags()
	flags[storageFlag] = &cobraflags.StringFlag{
		Name:  storageFlag,
		Value: config.StorageDriverPostgres,
		Usage: "Store to seed: postgres or mongo",
	}
	flags[mongoURIFlag] = &cobraflags.StringFlag{
		Name:  mongoURIFlag,
		Value: config.DefaultMongoURI,
		Usage: "MongoDB connection string",
	}
	flags[mongoDatabaseFlag] = &cobraflags.StringFlag{
		Name:  mongoDatabaseFlag,
		Value: config.DefaultMongoDatabase,
		Usage: "MongoDB database name",
	}

	env := map[string]string{
		storageFlag:       "STORAGE_DRIVER",
		mongoURIFlag:      "MONGODB_URI",
		mongoDatabaseFlag: "MONGODB_DATABASE",
	}
	for name, envVar := range postgresEnv {
		env[name] = envVar
	}
	register(cmd, flags, env)
	return cmd
}

func seedCommand(cmd *cobra.Command, _ []string) error {
	v, err := settings(cmd)
	if err != nil {
		return err
	}

	cfg := config.StorageConfig{
		Driver:      v.GetString(storageFlag),
		AutoMigrate: true,
		Postgres: config.DBConfig{
			Driver: v.GetString(dbDriverFlag),
			DSN:    v.GetString(dsnFlag),
		},
		Mongo: config.MongoConfig{
			URI:      v.GetString(mongoURIFlag),
			Database: v.GetString(mongoDatabaseFlag),
		},
	}
	if cfg.Driver == config.StorageDriverMemory {
		return fmt.Errorf("the %s store seeds itself at start-up", config.StorageDriverMemory)
	}

	store, closeStore, err := storage.Open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	inserted, err := store.ReplaceAll(cmd.Context(), seed.Plants())
	if err != nil {
		return fmt.Errorf("could not seed plants: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d plants into %s\n", inserted, cfg.Driver)
	return nil
}
