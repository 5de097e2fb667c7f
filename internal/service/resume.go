package service

import (
	"context"
	"fmt"
	"time"

	"github.com/twinlab/healthsync/internal/adapter"
	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/internal/scheduler"
	"github.com/twinlab/healthsync/models"
)

type resumeService struct {
	adapter   adapter.BackendAdapter
	scheduler scheduler.TaskScheduler
	task      scheduler.TaskFunc
	interval  time.Duration

	logger *logger.Logger
}

// NewResumeService constructs the startup resume check. task is the periodic
// backfill step the trigger will execute, typically the background runner's
// task function.
func NewResumeService(
	backend adapter.BackendAdapter,
	sched scheduler.TaskScheduler,
	task scheduler.TaskFunc,
	interval time.Duration,
	logger *logger.Logger,
) ResumeService {
	if interval <= 0 {
		interval = scheduler.DefaultInterval
	}
	return &resumeService{
		adapter:   backend,
		scheduler: sched,
		task:      task,
		interval:  interval,
		logger:    logger,
	}
}

// CheckAndSchedule implements [ResumeService]. It runs once per foreground
// launch. The keep policy makes re-registration idempotent: if a trigger
// from a previous launch is still alive it stays, a second one is never
// created.
func (r *resumeService) CheckAndSchedule(ctx context.Context) error {
	profile, err := r.adapter.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("resume check fetch profile: %w", err)
	}

	state := profile.HistoricalSync
	if state == nil || state.Status != models.HistoricalSyncInProgress || state.AllChunksProcessed() {
		r.logger.Debug().
			Str("func", "resumeService.CheckAndSchedule").
			Msg("no unfinished backfill, nothing to schedule")
		return nil
	}

	r.scheduler.RegisterPeriodic(
		ctx,
		scheduler.TaskHistoricalSync,
		r.interval,
		scheduler.Constraints{NetworkRequired: true, RequiresBatteryNotLow: true},
		scheduler.ExistingPolicyKeep,
		r.task,
	)

	r.logger.Info().
		Str("func", "resumeService.CheckAndSchedule").
		Int("current_chunk", state.CurrentChunk).
		Int("total_chunks", state.TotalChunks).
		Msg("resumed periodic backfill trigger")
	return nil
}
