// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/internal/scheduler"
	"github.com/twinlab/healthsync/internal/service"
	"github.com/twinlab/healthsync/internal/store"
)

// TaskResult is what one background invocation reports to the trigger
// framework.
type TaskResult int

const (
	// TaskResultSuccess keeps the periodic trigger registered.
	TaskResultSuccess TaskResult = iota
	// TaskResultSuccessAndCancel ends the invocation cleanly and cancels
	// the periodic trigger.
	TaskResultSuccessAndCancel
	// TaskResultFailure reports an abnormal invocation; the trigger stays
	// registered so a later invocation can recover.
	TaskResultFailure
)

// String renders the result for logging.
func (r TaskResult) String() string {
	switch r {
	case TaskResultSuccess:
		return "success"
	case TaskResultSuccessAndCancel:
		return "successAndCancel"
	case TaskResultFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Collaborators is everything one background invocation needs.
type Collaborators struct {
	HistoricalSync service.HistoricalSyncService
	Preferences    store.PreferenceStore
}

// CollaboratorFactory builds the invocation's collaborators. It runs at most
// once per adapter lifetime, on the first invocation, because background
// launches must not pay construction cost when there is nothing to do on
// subsequent runs.
type CollaboratorFactory func(ctx context.Context) (Collaborators, error)

// BackgroundInvocationAdapter adapts the backfill orchestrator to the
// periodic trigger contract.
type BackgroundInvocationAdapter struct {
	factory CollaboratorFactory

	buildOnce sync.Once
	collab    Collaborators
	buildErr  error

	logger *logger.Logger
}

// NewBackgroundInvocationAdapter returns an adapter that builds its
// collaborators lazily via factory.
func NewBackgroundInvocationAdapter(factory CollaboratorFactory, logger *logger.Logger) *BackgroundInvocationAdapter {
	return &BackgroundInvocationAdapter{factory: factory, logger: logger}
}

// RunOnce executes one background invocation. A panic anywhere below the
// boundary is recovered and reported as [TaskResultFailure]; it never
// escapes into the trigger framework.
func (a *BackgroundInvocationAdapter) RunOnce(ctx context.Context) (result TaskResult) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().
				Str("func", "BackgroundInvocationAdapter.RunOnce").
				Any("panic", r).
				Msg("background invocation panicked")
			result = TaskResultFailure
		}
	}()

	a.buildOnce.Do(func() {
		a.collab, a.buildErr = a.factory(ctx)
	})
	if a.buildErr != nil {
		a.logger.Error().
			Err(a.buildErr).
			Str("func", "BackgroundInvocationAdapter.RunOnce").
			Msg("failed to build collaborators")
		return TaskResultFailure
	}

	// Cheap pre-check: without a stored identity no step can ever upload,
	// so the trigger is cancelled without touching the network.
	if _, err := a.collab.Preferences.GetString(ctx, store.KeyUserID); errors.Is(err, store.ErrPreferenceNotFound) {
		a.logger.Info().
			Str("func", "BackgroundInvocationAdapter.RunOnce").
			Msg("no stored identity, cancelling periodic trigger")
		return TaskResultSuccessAndCancel
	}

	outcome := a.collab.HistoricalSync.RunStep(ctx)
	a.logger.Info().
		Str("func", "BackgroundInvocationAdapter.RunOnce").
		Str("outcome", outcome.String()).
		Msg("background invocation finished")

	if outcome.Terminal() {
		return TaskResultSuccessAndCancel
	}
	return TaskResultSuccess
}

// Task adapts RunOnce to the scheduler contract: only a cancel result
// removes the registration. Failures keep the trigger so the backfill can
// recover on a later invocation.
func (a *BackgroundInvocationAdapter) Task() scheduler.TaskFunc {
	return func(ctx context.Context) bool {
		return a.RunOnce(ctx) != TaskResultSuccessAndCancel
	}
}

// Run implements [Worker]: it performs one immediate invocation at app
// launch so the first backfill step does not wait a full trigger interval.
func (a *BackgroundInvocationAdapter) Run(ctx context.Context) {
	a.RunOnce(ctx)
}
