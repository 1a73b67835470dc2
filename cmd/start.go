package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unique-checker/core/loader"
	"unique-checker/core/logger"
	"unique-checker/core/middleware/auth"
	"unique-checker/core/middleware/rayid"
	"unique-checker/core/storage"
	"unique-checker/feature/backup"
	"unique-checker/feature/player"
	"unique-checker/feature/uniques"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "unique-checker/docs/swagger"
)

// @title Unique Checker API
// @version 1.0
// @description API for checking and syncing unique items.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the unique checker server",
	Long:  `Starts the HTTP control server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 1. Configuration, logger, store and service
		a, err := bootstrap(ctx, nil)
		if err != nil {
			return err
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Storage (optional, backups are disabled without it)
		var client storage.Client
		if c, err := storage.NewClient(a.cfg.Storage); err != nil {
			logg.Warn("Object storage unavailable, backups disabled", zap.Error(err))
		} else {
			client = c
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 3. Feature loader
		mgr := loader.NewManager()
		mgr.Register(uniques.NewFeature(a.service, ctx))
		mgr.Register(player.NewFeature(a.service, logg))
		mgr.Register(backup.NewFeature(client, a.cfg.Storage, a.store, a.service, a.service, logg))

		// RayID first so every log line is traceable
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			l.Info("Request",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("took", time.Since(start)),
			)
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Metrics and API docs stay public
		app.Get("/metrics", adaptor.HTTPHandler(a.metrics.Handler()))
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))
		if !a.cfg.Server.AuthEnabled() {
			logg.Warn("No API key configured, the control server is unprotected")
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", a.cfg.Server.Address()))
			errCh <- app.Listen(a.cfg.Server.Address())
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
