// Package main provides the CLI entrypoint for the cosmic catalog service.
// It wires subcommands (serve, migrate, seed, jwt), loads configuration, and initializes logging.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"

	"cosmic"
	"cosmic/internal/config"
	"cosmic/pkg/logger"
	"cosmic/pkg/storage"
	"cosmic/pkg/storage/postgres"
	"cosmic/pkg/storage/sqlite"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// database bundles the opened storage with the raw connection and the
// migration dialect matching it.
type database struct {
	storage.Storage

	sqlDB   *sql.DB
	dialect string
}

// getStorage opens the storage backend selected by the configured driver and
// returns it along with a cleanup function closing it.
func getStorage(ctx context.Context, cfg *config.Config) (*database, func()) {
	var db *database
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		lite, err := sqlite.New(ctx, sqlite.Options{
			Path:               cfg.Database.Path,
			MaxOpenConnections: cfg.Database.MaxOpenConnections,
			ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		})
		if err != nil {
			logger.Fatal(ctx, "could not create sqlite storage", zap.Error(err))
		}
		db = &database{Storage: lite, sqlDB: lite.DB.(*sql.DB), dialect: cosmic.DialectSQLite}
	default:
		pgsql, err := postgres.New(ctx, postgres.Options{
			Username:           cfg.Database.Username,
			Password:           cfg.Database.Password,
			Host:               cfg.Database.Host,
			Port:               cfg.Database.Port,
			Database:           cfg.Database.DatabaseName,
			ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
			MaxOpenConnections: cfg.Database.MaxOpenConnections,
			MaxIdleConnections: cfg.Database.MaxIdleConnections,
			SslMode:            cfg.Database.SslMode,
		})
		if err != nil {
			logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
		}
		db = &database{Storage: pgsql, sqlDB: pgsql.DB.(*sql.DB), dialect: cosmic.DialectPostgres}
	}

	return db, func() {
		logger.Info(ctx, "closing storage...", zap.String("driver", cfg.Database.Driver))
		if err := db.Close(); err != nil {
			logger.Warn(ctx, "could not close storage", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "cosmic",
		Short: "Catalog of planets, scientists and missions",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		seedCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
