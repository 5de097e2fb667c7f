package main

import (
	"context"
	"fmt"

	"github.com/twinlab/healthsync/internal/adapter"
	"github.com/twinlab/healthsync/internal/client"
	"github.com/twinlab/healthsync/internal/config"
	"github.com/twinlab/healthsync/internal/health"
	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/internal/notify"
	"github.com/twinlab/healthsync/internal/scheduler"
	"github.com/twinlab/healthsync/internal/service"
	"github.com/twinlab/healthsync/internal/store"
	"github.com/twinlab/healthsync/internal/tui"
	"github.com/twinlab/healthsync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// the TUI owns the terminal, so logs go to a file
	log := logger.NewFileLogger("healthsync-companion")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	provider := health.NewFileProvider(cfg.Health.ExportPath, log)
	sched := scheduler.NewTickerScheduler(log)
	notifier := notify.NewLogNotifier(log)

	// The runner builds its collaborators lazily, on the first background
	// invocation, by which time the services below exist.
	var services *service.Services
	runner := workers.NewBackgroundInvocationAdapter(func(context.Context) (workers.Collaborators, error) {
		return workers.Collaborators{
			HistoricalSync: services.HistoricalSync,
			Preferences:    storages.Preferences,
		}, nil
	}, log)

	services = service.NewServices(storages, backend, provider, sched, notifier, runner.Task(), cfg.Workers, log)

	ui, err := tui.New(services.Publisher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, backend, storages.Preferences, workers.NewWorkers(runner), ui, cfg.Auth, log)
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
