// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package models

import (
	"fmt"
	"time"
)

// HistoricalSyncStatus enumerates the lifecycle of the chunked backfill.
type HistoricalSyncStatus string

const (
	// HistoricalSyncNotStarted means no backfill has been planned yet.
	HistoricalSyncNotStarted HistoricalSyncStatus = "not_started"
	// HistoricalSyncInProgress means a backfill is planned and advancing.
	HistoricalSyncInProgress HistoricalSyncStatus = "in_progress"
	// HistoricalSyncCompleted means the final chunk has been acknowledged
	// by the backend.
	HistoricalSyncCompleted HistoricalSyncStatus = "completed"
)

// DefaultTotalChunks is the number of 30-day slices planned for a backfill,
// covering roughly one year of history.
const DefaultTotalChunks = 13

// ChunkSpanDays is the width of one backfill chunk's date range.
const ChunkSpanDays = 30

// HistoricalSyncState is the durable backfill cursor.
//
// The backend user profile is the source of truth for this value: both the
// foreground app and independently scheduled background invocations re-fetch
// it before every step, so a locally cached copy is never authoritative.
type HistoricalSyncState struct {
	// Status is the backfill lifecycle phase.
	Status HistoricalSyncStatus `json:"status"`

	// CurrentChunk is the index of the last chunk acknowledged by the
	// backend. −1 means no chunk has completed yet.
	CurrentChunk int `json:"current_chunk"`

	// TotalChunks is fixed when the backfill is planned and never changes
	// afterwards.
	TotalChunks int `json:"total_chunks"`

	// RetryCount counts consecutive failed attempts at the next chunk.
	// Reset to zero only on a successful advance.
	RetryCount int `json:"retry_count"`

	// LastUpdated is the backend-side timestamp of the last cursor mutation.
	// The backoff gate compares against this value.
	LastUpdated time.Time `json:"last_updated"`
}

// NewHistoricalSyncPlan returns the cursor for a freshly planned backfill.
func NewHistoricalSyncPlan(totalChunks int, now time.Time) HistoricalSyncState {
	if totalChunks <= 0 {
		totalChunks = DefaultTotalChunks
	}
	return HistoricalSyncState{
		Status:       HistoricalSyncInProgress,
		CurrentChunk: -1,
		TotalChunks:  totalChunks,
		RetryCount:   0,
		LastUpdated:  now,
	}
}

// Completed reports whether the backfill has finished.
func (s HistoricalSyncState) Completed() bool {
	return s.Status == HistoricalSyncCompleted
}

// AllChunksProcessed reports whether no further chunk remains to attempt.
func (s HistoricalSyncState) AllChunksProcessed() bool {
	return s.CurrentChunk+1 >= s.TotalChunks
}

// NextChunk is the index of the chunk the next step should attempt.
func (s HistoricalSyncState) NextChunk() int {
	return s.CurrentChunk + 1
}

// IsLastChunk reports whether chunk is the final one of the plan.
func (s HistoricalSyncState) IsLastChunk(chunk int) bool {
	return chunk == s.TotalChunks-1
}

// Validate checks cursor invariants after deserialisation from the backend.
func (s HistoricalSyncState) Validate() error {
	if s.TotalChunks <= 0 {
		return fmt.Errorf("historical sync state: total_chunks must be positive, got %d", s.TotalChunks)
	}
	if s.CurrentChunk >= s.TotalChunks {
		return fmt.Errorf("historical sync state: current_chunk %d out of range for %d chunks", s.CurrentChunk, s.TotalChunks)
	}
	if s.RetryCount < 0 {
		return fmt.Errorf("historical sync state: negative retry_count %d", s.RetryCount)
	}
	return nil
}

// ChunkRange maps a chunk index to its assigned date sub-range, anchored at
// the moment the backfill was planned. Chunks walk backwards in time:
// chunk 0 covers the oldest 30-day slice, the final chunk covers the most
// recent one, so an interrupted backfill always resumes with older data
// already durable.
func (s HistoricalSyncState) ChunkRange(chunk int, anchor time.Time) (from, to time.Time) {
	span := time.Duration(ChunkSpanDays) * 24 * time.Hour
	slicesFromAnchor := time.Duration(s.TotalChunks-chunk) * span

	from = anchor.Add(-slicesFromAnchor)
	to = from.Add(span)
	return from, to
}
