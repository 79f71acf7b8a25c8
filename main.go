package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kendall-kelly/laundry-api/config"
	"github.com/kendall-kelly/laundry-api/models"
	"github.com/kendall-kelly/laundry-api/routes"
	"github.com/kendall-kelly/laundry-api/services"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	seed := flag.Bool("seed", false, "insert demo data when the database is empty")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	config.SetupLogger(cfg)
	log.Info().Str("env", cfg.GoEnv).Msg("Starting Laundry API server...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *seed || cfg.SeedData); err != nil {
		log.Fatal().Err(err).Msg("Server stopped with error")
	}
	log.Info().Msg("Server stopped")
}

// run serves the API until ctx is cancelled, then drains in-flight requests
func run(ctx context.Context, cfg *config.Config, seed bool) error {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}
	defer sqlDB.Close()

	if err := models.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info().Msg("Database migration completed successfully")

	if seed {
		if err := services.Seed(ctx, db); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.Setup(db, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("Server is listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info().Msg("Shutting down server...")
	return server.Shutdown(shutdownCtx)
}
