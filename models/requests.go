// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package models

// PriorityChunkIndex marks an upload batch as belonging to the fast initial
// sync phase rather than to a numbered backfill chunk.
const PriorityChunkIndex = -1

// UploadSamplesRequest carries one batch of health samples to the backend.
// A batch never spans more than one backfill chunk, so an OS-aborted
// background invocation cannot leave a chunk partially committed.
type UploadSamplesRequest struct {
	// UserID is the owner of the uploaded samples.
	UserID int64 `json:"user_id"`

	// DeviceID identifies the uploading device installation.
	DeviceID string `json:"device_id"`

	// ChunkIndex is the backfill chunk these samples belong to, or
	// [PriorityChunkIndex] for the initial priority sync.
	ChunkIndex int `json:"chunk_index"`

	// Samples is the batch payload.
	Samples []HealthSample `json:"samples"`

	// Length is the total number of entries in Samples.
	Length int `json:"length"`
}

// ChunkCompleteRequest tells the backend that a backfill chunk's data is
// durable and the cursor may advance. The endpoint is idempotent: the
// backend accepts only the chunk index that is exactly current+1 relative
// to its stored cursor and no-ops anything else, so a stale or duplicate
// client step can never regress or double-apply progress.
type ChunkCompleteRequest struct {
	UserID      int64  `json:"user_id"`
	DeviceID    string `json:"device_id"`
	ChunkIndex  int    `json:"chunk_index"`
	TotalChunks int    `json:"total_chunks"`
}

// ProfileMetadataPatch is a set of dotted-path updates applied to the user
// profile metadata document (e.g. "historical_sync.retry_count" -> 3).
type ProfileMetadataPatch map[string]any
