// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/twinlab/healthsync/internal/adapter"
	"github.com/twinlab/healthsync/internal/health"
	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/internal/store"
	"github.com/twinlab/healthsync/models"
)

type prioritySyncService struct {
	adapter   adapter.BackendAdapter
	provider  health.Provider
	prefs     store.PreferenceStore
	publisher *SyncProgressPublisher
	clock     Clock

	windowDays  int
	totalChunks int

	logger *logger.Logger
}

// NewPrioritySyncService constructs the fast initial sync. windowDays is the
// size of the recent-data window (default 7); totalChunks is the plan size
// for the backfill it schedules (default [models.DefaultTotalChunks]).
func NewPrioritySyncService(
	backend adapter.BackendAdapter,
	provider health.Provider,
	prefs store.PreferenceStore,
	publisher *SyncProgressPublisher,
	clock Clock,
	windowDays, totalChunks int,
	logger *logger.Logger,
) PrioritySyncService {
	if windowDays <= 0 {
		windowDays = 7
	}
	if totalChunks <= 0 {
		totalChunks = models.DefaultTotalChunks
	}
	return &prioritySyncService{
		adapter:     backend,
		provider:    provider,
		prefs:       prefs,
		publisher:   publisher,
		clock:       clock,
		windowDays:  windowDays,
		totalChunks: totalChunks,
		logger:      logger,
	}
}

// Run implements [PrioritySyncService]. It uploads the most recent data
// window with the priority chunk index, records the sync time (which also
// anchors the backfill's chunk date ranges), and plans the backfill on the
// backend when the profile shows none.
func (s *prioritySyncService) Run(ctx context.Context) error {
	now := s.clock.Now()
	progress := models.NewSyncProgress(now)
	s.publish(ctx, progress.WithActivity("Requesting health permissions", now))

	userID, deviceID, err := s.ensureIdentity(ctx)
	if err != nil {
		s.publish(ctx, progress.WithError("no user identity", s.clock.Now()))
		return err
	}

	granted, err := s.provider.RequestAuthorization(ctx, models.DefaultSampleTypes)
	if err != nil {
		s.publish(ctx, progress.WithError("permission request failed", s.clock.Now()))
		return fmt.Errorf("request health authorization: %w", err)
	}
	if !granted {
		s.publish(ctx, progress.WithError("health permissions denied", s.clock.Now()))
		return ErrPermissionsDenied
	}

	now = s.clock.Now()
	from := now.AddDate(0, 0, -s.windowDays)
	s.publish(ctx, progress.WithActivity("Reading recent health data", now))

	samples, err := s.provider.QueryData(ctx, models.DefaultSampleTypes, from, now)
	if err != nil {
		s.publish(ctx, progress.WithError("health query failed", s.clock.Now()))
		return fmt.Errorf("query recent health data: %w", err)
	}

	progress = progress.WithCounts(len(samples), 0, 0, s.clock.Now())
	s.publish(ctx, progress.WithActivity("Uploading recent health data", s.clock.Now()))

	if len(samples) > 0 {
		err = s.adapter.UploadSamples(ctx, models.UploadSamplesRequest{
			UserID:     userID,
			DeviceID:   deviceID,
			ChunkIndex: models.PriorityChunkIndex,
			Samples:    samples,
		})
		if err != nil {
			s.publish(ctx, progress.WithError("upload failed", s.clock.Now()))
			return fmt.Errorf("upload priority window: %w", err)
		}
	}

	if err = s.prefs.SetTime(ctx, store.KeyLastSyncTime, now); err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "prioritySyncService.Run").
			Msg("failed to record last sync time")
	}

	if err = s.planBackfill(ctx, now); err != nil {
		return err
	}

	progress = progress.WithCounts(len(samples), len(samples), len(samples), s.clock.Now())
	s.publish(ctx, progress.WithComplete(s.clock.Now()))

	s.logger.Info().
		Str("func", "prioritySyncService.Run").
		Int("samples", len(samples)).
		Int("window_days", s.windowDays).
		Msg("priority sync finished")
	return nil
}

// planBackfill patches historical_sync to a fresh in-progress plan, but only
// when the backend shows no backfill yet. An existing plan (in progress or
// completed) is left untouched so a reinstall cannot restart a finished job.
func (s *prioritySyncService) planBackfill(ctx context.Context, now time.Time) error {
	profile, err := s.adapter.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("fetch profile before planning backfill: %w", err)
	}

	if state := profile.HistoricalSync; state != nil && state.Status != models.HistoricalSyncNotStarted {
		s.logger.Debug().
			Str("func", "prioritySyncService.planBackfill").
			Str("status", string(state.Status)).
			Msg("backfill already planned, leaving cursor untouched")
		return nil
	}

	plan := models.NewHistoricalSyncPlan(s.totalChunks, now)
	patch := models.ProfileMetadataPatch{
		"historical_sync.status":        string(plan.Status),
		"historical_sync.current_chunk": plan.CurrentChunk,
		"historical_sync.total_chunks":  plan.TotalChunks,
		"historical_sync.retry_count":   plan.RetryCount,
		"historical_sync.last_updated":  plan.LastUpdated.UTC().Format(time.RFC3339),
	}
	if err = s.adapter.PatchProfileMetadata(ctx, patch); err != nil {
		return fmt.Errorf("plan backfill: %w", err)
	}

	s.logger.Info().
		Str("func", "prioritySyncService.planBackfill").
		Int("total_chunks", plan.TotalChunks).
		Msg("historical backfill planned")
	return nil
}

// ensureIdentity loads the stored identity, generating and persisting a
// device id on first run. The user id must already exist (written at login).
func (s *prioritySyncService) ensureIdentity(ctx context.Context) (int64, string, error) {
	if _, err := s.prefs.GetString(ctx, store.KeyDeviceID); errors.Is(err, store.ErrPreferenceNotFound) {
		deviceID := uuid.NewString()
		if err = s.prefs.SetString(ctx, store.KeyDeviceID, deviceID); err != nil {
			return 0, "", fmt.Errorf("persist device id: %w", err)
		}
		s.logger.Info().
			Str("func", "prioritySyncService.ensureIdentity").
			Str("device_id", deviceID).
			Msg("generated device id")
	}

	return loadIdentity(ctx, s.prefs)
}

func (s *prioritySyncService) publish(ctx context.Context, progress models.SyncProgress) {
	if s.publisher != nil {
		s.publisher.Publish(ctx, progress)
	}
}
