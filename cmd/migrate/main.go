package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	settingsvc "github.com/rahuljain-dev/sareecenter-backend/internal/settings"
	"github.com/rahuljain-dev/sareecenter-backend/internal/storage/sqlstore"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/config"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/migrate"
)

// Applies the schema to the configured SQL backend. The redis backend is
// schemaless and needs no migration step.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "migrate"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if cfg.Storage.Backend == config.StorageBackendRedis {
		logg.Info(ctx, "redis backend selected, nothing to migrate")
		return
	}

	dbCfg := cfg.DB
	dbCfg.Driver = cfg.Storage.Backend

	dbClient, err := db.New(ctx, dbCfg, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	ctx = logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"driver": dbCfg.Driver,
	})

	if err := migrate.Run(ctx, dbClient); err != nil {
		logg.Error(ctx, "migration failed", err)
		os.Exit(1)
	}

	store := sqlstore.New(dbClient)
	if err := settingsvc.NewService(store.Settings(), logg).Seed(ctx); err != nil {
		logg.Error(ctx, "settings seed failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "migration complete")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
