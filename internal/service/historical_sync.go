// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twinlab/healthsync/internal/adapter"
	"github.com/twinlab/healthsync/internal/health"
	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/internal/notify"
	"github.com/twinlab/healthsync/internal/store"
	"github.com/twinlab/healthsync/models"
)

const completionTitle = "Digital Twin Ready! 🎉"
const completionMessage = "Your full health history has been synced."

type historicalSyncService struct {
	adapter   adapter.BackendAdapter
	provider  health.Provider
	prefs     store.PreferenceStore
	publisher *SyncProgressPublisher
	notifier  notify.Notifier
	clock     Clock

	// retryInterval is the delay suggested when the cursor itself cannot be
	// fetched, before any backoff applies.
	retryInterval time.Duration

	logger *logger.Logger
}

// NewHistoricalSyncService constructs the backfill orchestrator.
func NewHistoricalSyncService(
	backend adapter.BackendAdapter,
	provider health.Provider,
	prefs store.PreferenceStore,
	publisher *SyncProgressPublisher,
	notifier notify.Notifier,
	clock Clock,
	retryInterval time.Duration,
	logger *logger.Logger,
) HistoricalSyncService {
	if retryInterval <= 0 {
		retryInterval = 15 * time.Minute
	}
	return &historicalSyncService{
		adapter:       backend,
		provider:      provider,
		prefs:         prefs,
		publisher:     publisher,
		notifier:      notifier,
		clock:         clock,
		retryInterval: retryInterval,
		logger:        logger,
	}
}

// RunStep implements [HistoricalSyncService]. One invocation attempts at
// most one chunk:
//
//  1. missing identity terminates the job (nothing can be uploaded),
//  2. the cursor is re-fetched from the backend profile — a stale local copy
//     is never used, so concurrent invocations converge on the backend value,
//  3. completed or exhausted cursors terminate,
//  4. the backoff gate skips the attempt while a previous failure cools down,
//  5. the chunk's date range is queried and uploaded,
//  6. the chunk is acknowledged; only that acknowledgment advances the cursor,
//  7. the final chunk raises the one-time completion notification.
//
// A notify failure after a successful upload still counts as advanced: the
// backend cursor is authoritative and re-sending the acknowledgment is
// idempotent, so the next invocation repairs the gap.
func (s *historicalSyncService) RunStep(ctx context.Context) StepOutcome {
	now := s.clock.Now()
	progress := models.NewSyncProgress(now)
	s.publish(ctx, progress.WithActivity("Checking sync state", now))

	userID, deviceID, err := loadIdentity(ctx, s.prefs)
	switch {
	case errors.Is(err, ErrMissingIdentity):
		s.logger.Info().
			Err(err).
			Str("func", "historicalSyncService.RunStep").
			Msg("no stored identity, terminating backfill")
		s.publish(ctx, progress.WithError("no user identity", s.clock.Now()))
		return Terminated(ReasonMissingIdentity)
	case err != nil:
		// the identity exists as far as we know; only reading it failed, so
		// the trigger must survive for a later attempt
		s.logger.Warn().
			Err(err).
			Str("func", "historicalSyncService.RunStep").
			Msg("failed to read stored identity, retrying later")
		s.publish(ctx, progress.WithError("local store unavailable", s.clock.Now()))
		return RetryScheduled(s.retryInterval)
	}

	profile, err := s.adapter.GetProfile(ctx)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "historicalSyncService.RunStep").
			Msg("failed to fetch sync cursor, retrying later")
		s.publish(ctx, progress.WithError("backend unreachable", s.clock.Now()))
		return RetryScheduled(s.retryInterval)
	}

	state := profile.HistoricalSync
	if state == nil || state.Status == models.HistoricalSyncNotStarted {
		return Terminated(ReasonNotPlanned)
	}
	if err = state.Validate(); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "historicalSyncService.RunStep").
			Msg("backend cursor failed validation, retrying later")
		return RetryScheduled(s.retryInterval)
	}

	if state.Completed() {
		return Terminated(ReasonAlreadyComplete)
	}
	if state.AllChunksProcessed() {
		s.completeLocally(ctx)
		return Terminated(ReasonAllChunksProcessed)
	}

	now = s.clock.Now()
	if state.RetryCount > 0 {
		if eligible := NextEligibleTime(state.LastUpdated, state.RetryCount); now.Before(eligible) {
			remaining := eligible.Sub(now)
			s.logger.Debug().
				Str("func", "historicalSyncService.RunStep").
				Int("retry_count", state.RetryCount).
				Dur("remaining", remaining).
				Msg("backoff gate closed, skipping step")
			s.publish(ctx, progress.WithActivity(
				fmt.Sprintf("Waiting %s before retrying", remaining.Round(time.Second)), now))
			return SkippedBackoff(remaining)
		}
	}

	chunk := state.NextChunk()
	from, to := state.ChunkRange(chunk, s.backfillAnchor(ctx, now))

	s.publish(ctx, progress.WithActivity(
		fmt.Sprintf("Syncing chunk %d of %d", chunk+1, state.TotalChunks), now))

	samples, err := s.provider.QueryData(ctx, models.DefaultSampleTypes, from, to)
	if err != nil {
		return s.recordFailure(ctx, *state, progress, fmt.Errorf("query health data: %w", err))
	}

	progress = progress.WithCounts(len(samples), 0, 0, s.clock.Now())
	s.publish(ctx, progress)

	if len(samples) > 0 {
		err = s.adapter.UploadSamples(ctx, models.UploadSamplesRequest{
			UserID:     userID,
			DeviceID:   deviceID,
			ChunkIndex: chunk,
			Samples:    samples,
		})
		if err != nil {
			return s.recordFailure(ctx, *state, progress, fmt.Errorf("upload chunk %d: %w", chunk, err))
		}
	}

	progress = progress.WithCounts(len(samples), len(samples), len(samples), s.clock.Now())
	s.publish(ctx, progress)

	err = s.adapter.NotifyChunkComplete(ctx, models.ChunkCompleteRequest{
		UserID:      userID,
		DeviceID:    deviceID,
		ChunkIndex:  chunk,
		TotalChunks: state.TotalChunks,
	})
	switch {
	case errors.Is(err, adapter.ErrChunkConflict):
		// another invocation advanced the cursor first; the next fetch
		// reconciles
		s.logger.Info().
			Str("func", "historicalSyncService.RunStep").
			Int("chunk", chunk).
			Msg("chunk acknowledgment conflicted with a concurrent step")
	case err != nil:
		// samples are already durable on the backend; the acknowledgment is
		// idempotent and will be re-sent by the next invocation
		s.logger.Warn().
			Err(err).
			Str("func", "historicalSyncService.RunStep").
			Int("chunk", chunk).
			Msg("chunk uploaded but acknowledgment failed")
	}

	s.logger.Info().
		Str("func", "historicalSyncService.RunStep").
		Int("chunk", chunk).
		Int("total_chunks", state.TotalChunks).
		Int("samples", len(samples)).
		Msg("backfill chunk advanced")

	if state.IsLastChunk(chunk) {
		s.completeLocally(ctx)
		s.publish(ctx, progress.WithComplete(s.clock.Now()))
		return Terminated(ReasonAllChunksProcessed)
	}

	s.publish(ctx, progress.WithActivity(
		fmt.Sprintf("Chunk %d of %d done", chunk+1, state.TotalChunks), s.clock.Now()))
	return Advanced(chunk)
}

// recordFailure increments the remote retry counter, bumps the cursor's
// last_updated so the backoff gate measures from this failure, and maps the
// error to a retry outcome. A failure to record the failure is only logged;
// the retry still happens, just without a longer backoff.
func (s *historicalSyncService) recordFailure(ctx context.Context, state models.HistoricalSyncState, progress models.SyncProgress, cause error) StepOutcome {
	now := s.clock.Now()
	retryCount := state.RetryCount + 1

	s.logger.Warn().
		Err(cause).
		Str("func", "historicalSyncService.recordFailure").
		Int("retry_count", retryCount).
		Msg("backfill step failed")
	s.publish(ctx, progress.WithError(cause.Error(), now))

	patch := models.ProfileMetadataPatch{
		"historical_sync.retry_count":  retryCount,
		"historical_sync.last_updated": now.UTC().Format(time.RFC3339),
	}
	if err := s.adapter.PatchProfileMetadata(ctx, patch); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "historicalSyncService.recordFailure").
			Msg("failed to record retry count on backend")
	}

	return RetryScheduled(BackoffDelay(retryCount))
}

// completeLocally sets the durable completion flags and raises the one-time
// completion notification. The historical_sync_complete preference guards
// the notification so repeated terminal steps stay silent.
func (s *historicalSyncService) completeLocally(ctx context.Context) {
	done, err := s.prefs.GetBool(ctx, store.KeyHistoricalSyncComplete)
	if err == nil && done {
		return
	}

	now := s.clock.Now()
	if err = s.prefs.SetBool(ctx, store.KeyHistoricalSyncComplete, true); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "historicalSyncService.completeLocally").
			Msg("failed to persist completion flag")
		return
	}
	if err = s.prefs.SetTime(ctx, store.KeyHistoricalSyncCompletedAt, now); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "historicalSyncService.completeLocally").
			Msg("failed to persist completion time")
	}

	s.notifier.Show(completionTitle, completionMessage, 10*time.Second)
}

// backfillAnchor is the fixed point chunk date ranges are computed from: the
// recorded priority sync time, falling back to now for installations that
// predate the preference.
func (s *historicalSyncService) backfillAnchor(ctx context.Context, now time.Time) time.Time {
	anchor, err := s.prefs.GetTime(ctx, store.KeyLastSyncTime)
	if err != nil {
		return now
	}
	return anchor
}

func (s *historicalSyncService) publish(ctx context.Context, progress models.SyncProgress) {
	if s.publisher != nil {
		s.publisher.Publish(ctx, progress)
	}
}
