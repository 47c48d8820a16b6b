package main

import (
	"context"
	"fmt"

	"github.com/vidora/vidora/internal/adapter"
	"github.com/vidora/vidora/internal/config"
	"github.com/vidora/vidora/internal/handler"
	"github.com/vidora/vidora/internal/logger"
	"github.com/vidora/vidora/internal/server"
	"github.com/vidora/vidora/internal/service"
	"github.com/vidora/vidora/internal/store"
	"github.com/vidora/vidora/internal/workers"
	"github.com/vidora/vidora/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vidora-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to postgres")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	blobStore, err := adapter.NewS3BlobStore(ctx, cfg.Storage.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob store")
	}

	cleanup := workers.NewBlobCleanupWorker(blobStore, cfg.Workers, log)

	services := service.NewServices(storages, blobStore, cleanup, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(cleanup).Run(ctx)

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
