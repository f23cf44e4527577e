package main

import (
	"fmt"

	"github.com/MKhiriev/warm-whisper/internal/adapter"
	"github.com/MKhiriev/warm-whisper/internal/agent"
	"github.com/MKhiriev/warm-whisper/internal/client"
	"github.com/MKhiriev/warm-whisper/internal/config"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/service"
	"github.com/MKhiriev/warm-whisper/internal/store"
	"github.com/MKhiriev/warm-whisper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("warm-whisper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	agentClient, err := agent.NewHTTPClient(cfg.Agent, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create agent client")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, agentClient, cfg.App, log)

	ui := tui.New(services, log)

	app := client.NewApp(services, ui, cfg.Workers, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
