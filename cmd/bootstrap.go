package cmd

import (
	"context"
	"fmt"
	"time"

	"inventory-tracker/core/config"
	"inventory-tracker/core/database"
	"inventory-tracker/core/logger"
	"inventory-tracker/core/storage"
	"inventory-tracker/feature/inventory"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps bundles the dependencies every command needs.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	// client is nil when object storage is disabled.
	client storage.Client
}

// bootstrap loads configuration, then connects to the database and, when
// enabled, to object storage. The inventory schema is migrated when columns
// are missing.
func bootstrap(ctx context.Context) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	l.Info("Connected to database", zap.String("driver", cfg.Database.Driver), zap.String("name", cfg.Database.Name))

	if err := ensureSchema(db, l); err != nil {
		return nil, err
	}

	rt := &deps{cfg: cfg, logger: l, db: db}

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		timeout := time.Duration(max(cfg.Storage.TimeoutSeconds, 1)) * time.Second
		bctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := storage.EnsureBucket(bctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			return nil, err
		}
		rt.client = client
		l.Info("Object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	}

	return rt, nil
}

func ensureSchema(db *gorm.DB, l *zap.Logger) error {
	missing, err := inventory.VerifySchema(db)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if len(missing) == 0 {
		return nil
	}
	l.Info("Migrating inventory schema", zap.Strings("missing_columns", missing))
	return inventory.Migrate(db)
}

func (rt *deps) service() *inventory.Service {
	return inventory.NewService(
		inventory.NewGormStore(rt.db),
		rt.client,
		rt.cfg.Storage.Bucket,
		logger.Named(rt.logger, "inventory"),
		rt.cfg.Export.DateLayout,
	)
}
