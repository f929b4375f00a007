package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/activity-tracker/internal/adapter"
	"github.com/MKhiriev/activity-tracker/internal/client"
	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/service"
	"github.com/MKhiriev/activity-tracker/internal/tui"
	"github.com/MKhiriev/activity-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("activity-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)
	ui := tui.New(0, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	app, err := client.NewApp(services, ui, cfg, models.DefaultTimelineDays, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
