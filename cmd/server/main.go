// Package main is the entry point for the investment dashboard service.
// It serves a screen over a fixed table of investment options: category and
// constraint filters, summary averages, chart series and CSV export.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aristath/investlab/internal/config"
	"github.com/aristath/investlab/internal/modules/charts"
	"github.com/aristath/investlab/internal/modules/dashboard"
	dashboardhandlers "github.com/aristath/investlab/internal/modules/dashboard/handlers"
	"github.com/aristath/investlab/internal/modules/dataset"
	"github.com/aristath/investlab/internal/modules/export"
	"github.com/aristath/investlab/internal/server"
	"github.com/aristath/investlab/pkg/logger"
)

// Set at build time with -ldflags "-X main.Version=... -X main.GitCommit=..."
var (
	Version   = "dev"
	GitCommit = ""
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	logger.SetGlobalLogger(log)

	log.Info().Str("version", Version).Str("commit", GitCommit).Msg("Starting investlab")

	provider := dataset.NewProvider()
	log.Info().
		Int("records", len(provider.GetAll())).
		Int("categories", len(provider.Categories())).
		Msg("Investment table loaded")

	dashboardService := dashboard.NewService(
		provider,
		charts.NewService(log),
		export.NewExporter(cfg.ExportFileName, log),
		log,
	)

	srv := server.New(server.Config{
		Log:               log,
		Port:              cfg.Port,
		DevMode:           cfg.DevMode,
		Version:           Version,
		GitCommit:         GitCommit,
		DashboardHandlers: dashboardhandlers.NewHandler(dashboardService, log),
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
