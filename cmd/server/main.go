package main

import (
	"context"
	"fmt"

	"github.com/invoicerd/invoicer/internal/config"
	transport "github.com/invoicerd/invoicer/internal/handler/http"
	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/internal/server"
	"github.com/invoicerd/invoicer/internal/service"
	"github.com/invoicerd/invoicer/internal/store"
	"github.com/invoicerd/invoicer/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// insecureTokenSignKey is used when no sign key is configured so a bare
// `go run` still works. Real deployments must set TOKEN_SIGN_KEY.
const insecureTokenSignKey = "your-insecure-default-secret"

func main() {
	printBuildInfo()

	log := logger.NewLogger("invoicer-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.TokenSignKey == "" {
		log.Warn().Msg("no token sign key configured, falling back to the insecure default")
		cfg.App.TokenSignKey = insecureTokenSignKey
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, *cfg, log)
	handler := transport.NewHandler(services, *cfg, log)
	background := workers.NewWorkers(storages, cfg.Workers, log)

	srv, err := server.NewServer(handler, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
