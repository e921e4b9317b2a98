package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"pcimon/internal/api"
	"pcimon/internal/api/handlers"
	"pcimon/internal/config"
	"pcimon/internal/dataset"
	"pcimon/internal/domain/services"
	"pcimon/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	instanceID := uuid.NewString()
	log = log.WithInstanceID(instanceID)
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting pcimon API")

	// Load the compliance snapshot. Data is static for the process lifetime;
	// a bad snapshot is fatal here rather than on the first request.
	store := dataset.NewStore(dataset.Config{
		RequirementsPath:  cfg.Data.RequirementsPath(),
		ControlStatusPath: cfg.Data.ControlStatusPath(),
		FindingsPath:      cfg.Data.FindingsPath(),
		TrendPath:         cfg.Data.TrendPath(),
	}, log)
	if err := store.Preload(); err != nil {
		log.Fatal().Err(err).Msg("failed to load compliance datasets")
	}

	// Wire handlers and router
	h := handlers.NewHandlers(handlers.Dependencies{
		Store:      store,
		Assembler:  services.NewAssembler(log),
		Version:    cfg.App.Version,
		InstanceID: instanceID,
		Logger:     log,
	})
	router := api.NewRouter(cfg, h, log)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal().Err(err).Msg("server error")
	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			if err := server.Close(); err != nil {
				log.Error().Err(err).Msg("forced close failed")
			}
		}
	}

	log.Info().Msg("pcimon API stopped")
}
