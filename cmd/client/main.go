package main

import (
	"fmt"

	"github.com/unidesk/challan-desk/internal/adapter"
	"github.com/unidesk/challan-desk/internal/client"
	"github.com/unidesk/challan-desk/internal/config"
	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/internal/service"
	"github.com/unidesk/challan-desk/internal/store"
	"github.com/unidesk/challan-desk/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("challan-desk")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sessions := service.NewSessionService(localStorage.SessionRepository, log)

	portalAdapter, err := adapter.NewHTTPPortalAdapter(cfg.Adapter, sessions.Token, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create portal adapter")
	}

	services := service.NewClientServices(sessions, portalAdapter, localStorage, log)

	ui, err := tui.New(services, portalAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

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
