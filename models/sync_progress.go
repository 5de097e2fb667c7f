// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package models

import "time"

// SyncProgress is an immutable snapshot of the current sync attempt.
//
// A fresh value is created via [NewSyncProgress] at the start of every
// attempt and evolved through the With* copy helpers; the value itself is
// never mutated in place. Snapshots are broadcast to observers and
// best-effort persisted for crash recovery of the current attempt only —
// the authoritative backfill cursor lives on the backend
// (see [HistoricalSyncState]).
type SyncProgress struct {
	// TotalDataPoints is the number of samples the current attempt plans to
	// process. Zero until the attempt has queried the health provider.
	TotalDataPoints int `json:"total_data_points"`

	// ProcessedDataPoints counts samples handled so far in this attempt.
	// Never exceeds TotalDataPoints once TotalDataPoints is known.
	ProcessedDataPoints int `json:"processed_data_points"`

	// SuccessfulUploads counts samples the backend has accepted.
	SuccessfulUploads int `json:"successful_uploads"`

	// SyncStartTime is when this attempt began.
	SyncStartTime time.Time `json:"sync_start_time"`

	// LastUpdateTime is when this snapshot was produced.
	LastUpdateTime time.Time `json:"last_update_time"`

	// CurrentActivity is a short human-readable label of what the sync is
	// doing right now (e.g. "Uploading chunk 4 of 13").
	CurrentActivity string `json:"current_activity"`

	// IsComplete reports that the attempt finished successfully.
	IsComplete bool `json:"is_complete"`

	// IsError reports that the attempt ended with an error. It marks the end
	// of the attempt, not of the whole backfill job.
	IsError bool `json:"is_error"`

	// ErrorMessage carries the failure description when IsError is set.
	ErrorMessage string `json:"error_message,omitempty"`
}

// NewSyncProgress returns the initial snapshot for a new sync attempt.
func NewSyncProgress(now time.Time) SyncProgress {
	return SyncProgress{
		SyncStartTime:   now,
		LastUpdateTime:  now,
		CurrentActivity: "Starting sync",
	}
}

// WithActivity returns a copy with an updated activity label.
func (p SyncProgress) WithActivity(activity string, now time.Time) SyncProgress {
	p.CurrentActivity = activity
	p.LastUpdateTime = now
	return p
}

// WithCounts returns a copy with updated data-point counters.
func (p SyncProgress) WithCounts(total, processed, uploaded int, now time.Time) SyncProgress {
	p.TotalDataPoints = total
	p.ProcessedDataPoints = processed
	p.SuccessfulUploads = uploaded
	p.LastUpdateTime = now
	return p
}

// WithComplete returns a copy marked as successfully finished.
func (p SyncProgress) WithComplete(now time.Time) SyncProgress {
	p.IsComplete = true
	p.CurrentActivity = "Sync complete"
	p.LastUpdateTime = now
	return p
}

// WithError returns a copy marked as failed with the given message.
func (p SyncProgress) WithError(message string, now time.Time) SyncProgress {
	p.IsError = true
	p.ErrorMessage = message
	p.LastUpdateTime = now
	return p
}
