// @title           Pi Dashboard API
// @version         1.0
// @description     Read-only status API for a Raspberry Pi home server: host metrics, Docker containers, cloudflared tunnel and systemd services.

// @host      localhost:5555
// @BasePath  /api

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli/v2"

	_ "pidash/docs" // Swagger docs

	apiserver "pidash/internal/api"
	configapp "pidash/internal/config/application"
	"pidash/internal/infrastructure/logger"
	snapshotapp "pidash/internal/snapshot/application"
	snapshotinfra "pidash/internal/snapshot/infrastructure"
)

func run(c *cli.Context) error {
	// Bootstrap logger from the environment, the final logger needs the
	// resolved configuration first
	bootLogger := logger.NewLogger()
	logger.SetDefaultLogger(bootLogger)

	configapp.LoadEnvFile(bootLogger, c.String("env-file"))

	cfg := configapp.LoadRuntimeConfig(
		c.String("port"),
		c.String("services-config"),
		c.String("log-level"),
		c.String("log-format"),
		c.String("log-output"),
		c.Bool("dev"),
	)

	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.LogOutput)
	logger.SetDefaultLogger(appLogger)

	if err := cfg.Validate(); err != nil {
		appLogger.Error("Invalid configuration", "err", err)
		return fmt.Errorf("invalid configuration: %w", err)
	}

	appLogger.Info("Starting pidash", "version", "1.0")

	sigCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Monitored services come from an optional JSON file
	services := configapp.LoadServices(appLogger, cfg.ServicesPath)

	// Initialize host probes
	appLogger.Debug("Initializing host probes")
	gauges := snapshotinfra.NewHostGauges()
	runner := snapshotinfra.NewExecRunner()
	lister := snapshotinfra.NewDockerLister()

	// Initialize snapshot service
	appLogger.Debug("Initializing snapshot service")
	snapshotLogger := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.LogOutput)
	snapshotService := snapshotapp.NewService(snapshotLogger, gauges, runner, lister, services)
	appLogger.Debug("Snapshot service initialized", "services", len(services))

	// Initialize API server
	appLogger.Debug("Initializing API server")
	apiServer, err := apiserver.NewServer(appLogger, cfg, snapshotService)
	if err != nil {
		appLogger.Error("Failed to create API server", "err", err)
		return fmt.Errorf("failed to create API server: %w", err)
	}
	appLogger.Debug("API server initialized")

	// Start API server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("API server error", "err", err)
			serverErrChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	appLogger.Info("pidash started successfully, waiting for shutdown signal")

	// Wait for interrupt or server error
	select {
	case <-sigCtx.Done():
		appLogger.Info("Shutdown signal received, starting graceful shutdown")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("API server shutdown error", "err", err)
			return fmt.Errorf("API server shutdown error: %w", err)
		}

		appLogger.Info("Graceful shutdown completed")
		return nil
	case err := <-serverErrChan:
		appLogger.Error("Server error received", "err", err)
		return err
	}
}

func main() {
	app := &cli.App{
		Name:  "pidash",
		Usage: "read-only status API for a Raspberry Pi home server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "port the API listens on",
			},
			&cli.StringFlag{
				Name:  "services-config",
				Usage: "path to the monitored services JSON file",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "path to a .env file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: DEBUG, INFO, WARN, ERROR",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format: text or json",
			},
			&cli.StringFlag{
				Name:  "log-output",
				Usage: "log output: stdout, stderr or a file path",
			},
			&cli.BoolFlag{
				Name:  "dev",
				Usage: "serve the Swagger UI at /swagger",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		// Use default logger for final error message if run() failed early
		logger.DefaultLogger().Error("Application error", "err", err)
		os.Exit(1)
	}
}
