package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-sync/internal/config"
	"github.com/MKhiriev/go-vocab-sync/internal/handler/http"
	"github.com/MKhiriev/go-vocab-sync/internal/logger"
	"github.com/MKhiriev/go-vocab-sync/internal/server"
	"github.com/MKhiriev/go-vocab-sync/internal/service"
	"github.com/MKhiriev/go-vocab-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vocab-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := connectDatabase(cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)
	handler := http.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func connectDatabase(cfg config.DB, log *logger.Logger) (*store.DB, error) {
	ctx := context.Background()

	switch cfg.Driver {
	case "sqlite3":
		return store.NewConnectSQLite(ctx, cfg, log)
	case "", "pgx":
		return store.NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
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
