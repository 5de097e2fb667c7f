package service

import (
	"context"

	"github.com/twinlab/healthsync/internal/adapter"
	"github.com/twinlab/healthsync/internal/config"
	"github.com/twinlab/healthsync/internal/health"
	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/internal/notify"
	"github.com/twinlab/healthsync/internal/scheduler"
	"github.com/twinlab/healthsync/internal/store"
)

// Services bundles the sync services for the foreground app.
type Services struct {
	Publisher      *SyncProgressPublisher
	PrioritySync   PrioritySyncService
	HistoricalSync HistoricalSyncService
	Resume         ResumeService
}

// NewServices wires the sync services from their collaborators. task is the
// function the resume service registers as the periodic backfill trigger;
// passing nil registers a plain [StepTask] over the historical sync service.
// The foreground app passes the background runner's task function instead so
// triggered steps get its panic containment.
func NewServices(
	storages *store.Storages,
	backend adapter.BackendAdapter,
	provider health.Provider,
	sched scheduler.TaskScheduler,
	notifier notify.Notifier,
	task scheduler.TaskFunc,
	cfg config.ClientWorkers,
	logger *logger.Logger,
) *Services {
	clock := SystemClock()
	publisher := NewSyncProgressPublisher(storages.Preferences, logger)

	historical := NewHistoricalSyncService(
		backend, provider, storages.Preferences, publisher, notifier, clock,
		cfg.BackgroundInterval, logger,
	)
	priority := NewPrioritySyncService(
		backend, provider, storages.Preferences, publisher, clock,
		cfg.PriorityWindowDays, cfg.TotalChunks, logger,
	)
	if task == nil {
		task = StepTask(historical)
	}
	resume := NewResumeService(
		backend, sched, task, cfg.BackgroundInterval, logger,
	)

	return &Services{
		Publisher:      publisher,
		PrioritySync:   priority,
		HistoricalSync: historical,
		Resume:         resume,
	}
}

// StepTask adapts a backfill step to a scheduler task: terminal outcomes
// cancel the periodic registration, everything else keeps it.
func StepTask(svc HistoricalSyncService) scheduler.TaskFunc {
	return func(ctx context.Context) bool {
		return !svc.RunStep(ctx).Terminal()
	}
}
