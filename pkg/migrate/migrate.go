// Package migrate brings the relational schema up to date. The schema is
// defined once on the gorm models so the same migration works on sqlite
// and postgres.
package migrate

import (
	"context"
	"fmt"

	"github.com/rahuljain-dev/sareecenter-backend/pkg/config"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/db/models"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
)

// Run migrates every model the storefront persists.
func Run(ctx context.Context, client *db.Client) error {
	err := client.DB().WithContext(ctx).AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.Setting{},
	)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// MaybeRun executes the schema migration when auto-migrate is enabled.
// Hosted deployments typically disable it and run cmd/migrate instead.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.Storage.AutoMigrate {
		return nil
	}

	ctx = logg.WithFields(ctx, map[string]any{"backend": cfg.Storage.Backend, "env": cfg.App.Env})
	logg.Info(ctx, "running schema migration")

	if err := Run(ctx, client); err != nil {
		return err
	}

	logg.Info(ctx, "schema migration completed")
	return nil
}
