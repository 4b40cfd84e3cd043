package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"greenscape/internal/config"
	"greenscape/internal/logging"
	"greenscape/internal/web"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website server",
	Long: `Start the HTTP server for the GreenScape site. Settings come from
the layered config files and APP_* environment variables; --host and
--port override whatever was loaded.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (overrides settings)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides settings)")
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(configDir)
	if err != nil {
		return err
	}

	// CLI flags outrank every config layer.
	if serveHost != "" {
		settings.Server.Host = serveHost
	}
	if servePort != 0 {
		settings.Server.Port = servePort
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(settings.Log.Level, settings.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	server := web.NewServer(settings, logger)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		fmt.Printf("%s listening on http://%s\n", settings.Metadata.Name, settings.Server.Addr())
		fmt.Println("Press Ctrl+C to stop")
		serverErr <- server.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			return err
		}
	case sig := <-shutdown:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("error during shutdown", zap.Error(err))
			return err
		}
	}

	return nil
}
