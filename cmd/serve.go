package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"save-editor/core/audit"
	"save-editor/core/config"
	"save-editor/core/database"
	"save-editor/core/loader"
	"save-editor/core/logger"
	"save-editor/core/middleware/auth"
	"save-editor/core/middleware/rayid"
	"save-editor/core/session"
	"save-editor/core/storage"

	"save-editor/feature/augment"
	"save-editor/feature/company"
	"save-editor/feature/faction"
	"save-editor/feature/hacknet"
	"save-editor/feature/job"
	"save-editor/feature/savegame"
	"save-editor/feature/server"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the save editor backend",
	Long:  `Starts the HTTP server and initializes all editor features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional, audit trail only)
		var recorder *audit.Recorder
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional audit database connection failed", zap.Error(err))
		} else if recorder, err = audit.NewRecorder(db, logg); err != nil {
			logg.Warn("Failed to prepare audit trail", zap.Error(err))
			recorder = nil
		} else {
			logg.Info("Audit trail enabled", zap.String("driver", cfg.Database.Driver))
		}

		// 4. Initialize Storage (Optional)
		var store storage.Client
		if cfg.Storage.Enabled() {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			logg.Info("Object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			UnescapePath:          true, // Faction and augmentation names carry spaces
		})

		// 6. Session Manager + Feature Loader
		sessions := session.NewManager(logg)
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(savegame.NewFeature(sessions, store, cfg.Storage, logg, recorder))
		mgr.Register(faction.NewFeature(sessions, logg, recorder))
		mgr.Register(company.NewFeature(sessions, logg, recorder))
		mgr.Register(server.NewFeature(sessions, logg, recorder))
		mgr.Register(job.NewFeature(sessions, logg, recorder))
		mgr.Register(augment.NewFeature(sessions, logg, recorder))
		mgr.Register(hacknet.NewFeature(sessions, logg, recorder))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
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

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 4. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
