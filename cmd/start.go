package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"inventory-tracker/core/loader"
	"inventory-tracker/core/logger"
	"inventory-tracker/core/middleware/auth"
	"inventory-tracker/core/middleware/rayid"
	"inventory-tracker/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "inventory-tracker/docs/swagger"
)

// @title Inventory Tracker API
// @version 1.0
// @description API for managing inventory items and spreadsheet imports.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory server",
	Long:  `Starts the HTTP server, the export scheduler and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := bootstrap(context.Background())
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             rt.cfg.Server.BodyLimit(),
		})

		// Features
		mgr := loader.NewManager()
		feature := inventory.NewFeature(
			inventory.NewGormStore(rt.db),
			rt.client,
			rt.cfg.Storage.Bucket,
			logger.Named(logg, "inventory"),
			rt.cfg.Export.DateLayout,
		)
		mgr.Register(feature)

		// RayID must come first so every log line carries it.
		app.Use(recover.New())
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Export snapshots need both a schedule and object storage.
		var sched *inventory.Scheduler
		switch {
		case rt.cfg.Export.Schedule == "":
		case rt.client == nil:
			logg.Warn("Export schedule set but object storage is disabled; snapshots are off")
		default:
			sched, err = inventory.NewScheduler(rt.cfg.Export.Schedule, feature.Service(), logger.Named(logg, "scheduler"))
			if err != nil {
				logg.Fatal("Failed to create export scheduler", zap.Error(err))
			}
			sched.Start()
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if sched != nil {
			sched.Stop()
		}
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
