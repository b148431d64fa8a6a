package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/storefront-gate/internal/profiles"
	"github.com/angelmondragon/storefront-gate/pkg/config"
	"github.com/angelmondragon/storefront-gate/pkg/db"
	"github.com/angelmondragon/storefront-gate/pkg/kv"
	"github.com/angelmondragon/storefront-gate/pkg/logger"
)

// MaybeRunDev creates the gateway schema automatically when the app is running
// in dev mode and the feature flag is enabled. Deployments manage the schema
// out of band.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithField(ctx, "env", cfg.App.Env)
	logg.Info(ctx, "running schema auto-migration (dev auto-run)")

	if err := client.DB().WithContext(ctx).AutoMigrate(&kv.Entry{}, &profiles.Profile{}); err != nil {
		return fmt.Errorf("running auto-migration: %w", err)
	}

	logg.Info(ctx, "schema auto-migration completed")
	return nil
}
