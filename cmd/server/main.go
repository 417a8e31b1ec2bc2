package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bio-link/internal/adapter"
	"github.com/MKhiriev/go-bio-link/internal/config"
	"github.com/MKhiriev/go-bio-link/internal/handler"
	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/internal/server"
	"github.com/MKhiriev/go-bio-link/internal/service"
	"github.com/MKhiriev/go-bio-link/internal/store"
	"github.com/MKhiriev/go-bio-link/internal/workers"
	"github.com/MKhiriev/go-bio-link/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-bio-link-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	clients := buildWidgetClients(cfg, log)
	cache := workers.NewWidgetCache(cfg.Workers.WidgetRefreshInterval)
	janitor := workers.NewWidgetCacheJanitor(cache, cfg.Workers.WidgetRefreshInterval, log)

	services := service.NewServices(storages, clients, cache, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(janitor), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// buildWidgetClients constructs a provider client for every configured
// integration. Unconfigured providers stay nil and the corresponding widget
// is disabled server-wide.
func buildWidgetClients(cfg *config.StructuredConfig, log *logger.Logger) service.WidgetClients {
	var clients service.WidgetClients
	timeout := cfg.Integrations.RequestTimeout

	if cfg.Integrations.Spotify.Address != "" {
		client, err := adapter.NewSpotifyClient(cfg.Integrations.Spotify, timeout, log)
		if err != nil {
			log.Error().Err(err).Msg("error creating music provider client")
		} else {
			clients.NowPlaying = client
		}
	}

	if cfg.Integrations.Weather.Address != "" {
		client, err := adapter.NewWeatherClient(cfg.Integrations.Weather, timeout, log)
		if err != nil {
			log.Error().Err(err).Msg("error creating weather provider client")
		} else {
			clients.Weather = client
		}
	}

	if cfg.Integrations.WakaTime.Address != "" {
		client, err := adapter.NewWakaTimeClient(cfg.Integrations.WakaTime, timeout, log)
		if err != nil {
			log.Error().Err(err).Msg("error creating code activity provider client")
		} else {
			clients.CodeActivity = client
		}
	}

	if cfg.Integrations.GitHub.Address != "" {
		client, err := adapter.NewGitHubClient(cfg.Integrations.GitHub, timeout, log)
		if err != nil {
			log.Error().Err(err).Msg("error creating contributions provider client")
		} else {
			clients.Contributions = client
		}
	}

	return clients
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
