package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rahuljain-dev/sareecenter-backend/api/routes"
	checkoutsvc "github.com/rahuljain-dev/sareecenter-backend/internal/checkout"
	notificationsvc "github.com/rahuljain-dev/sareecenter-backend/internal/notifications"
	ordersvc "github.com/rahuljain-dev/sareecenter-backend/internal/orders"
	productsvc "github.com/rahuljain-dev/sareecenter-backend/internal/products"
	settingsvc "github.com/rahuljain-dev/sareecenter-backend/internal/settings"
	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/internal/storage/kvstore"
	"github.com/rahuljain-dev/sareecenter-backend/internal/storage/sqlstore"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/config"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/metrics"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/migrate"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, cleanup, err := openStore(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap storage", err)
		os.Exit(1)
	}
	defer cleanup()

	settings := settingsvc.NewService(store.Settings(), logg)
	if err := settings.Seed(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to seed settings", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()

	svcs := routes.Services{
		Store:    store,
		Products: productsvc.NewService(store.Products(), logg),
		Orders:   ordersvc.NewService(store.Orders(), store.Products(), logg),
		Settings: settings,
		Checkout: checkoutsvc.NewService(
			store.Orders(),
			store.Products(),
			notificationsvc.NewService(settings, logg),
			metrics.NewCheckoutMetrics(registry),
			logg,
			checkoutsvc.Options{RevalidatePrices: cfg.Checkout.RevalidatePrices},
		),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Storage.Backend,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, svcs, metrics.NewHTTPMetrics(registry), registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// openStore builds the persistence gateway for the configured backend. The
// cleanup closes whichever client was opened.
func openStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (storage.Store, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendSQLite, config.StorageBackendPostgres:
		dbCfg := cfg.DB
		dbCfg.Driver = cfg.Storage.Backend

		client, err := db.New(ctx, dbCfg, logg)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate.MaybeRun(ctx, cfg, logg, client); err != nil {
			client.Close()
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logg.Error(ctx, "error closing database", err)
			}
		}
		return sqlstore.New(client), cleanup, nil

	case config.StorageBackendRedis:
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := client.Close(); err != nil {
				logg.Error(ctx, "error closing redis", err)
			}
		}
		return kvstore.New(client), cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
