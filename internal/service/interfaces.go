// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

// Package service contains the sync business logic: the fast priority sync,
// the chunked historical backfill orchestrator, the progress publisher, and
// the startup resume check.
//
// The backfill cursor always comes from the backend profile; nothing in this
// package trusts a locally cached copy of it.
package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// HistoricalSyncService advances the chunked backfill.
type HistoricalSyncService interface {
	// RunStep executes exactly one backfill step: it reconciles the cursor
	// with the backend, applies the backoff gate, and attempts at most one
	// chunk. All failures are folded into the returned [StepOutcome]; the
	// method itself never fails.
	RunStep(ctx context.Context) StepOutcome
}

// PrioritySyncService performs the fast initial sync of recent data and
// plans the backfill.
type PrioritySyncService interface {
	// Run requests provider authorization, uploads the most recent data
	// window, records the sync time, and plans the historical backfill on
	// the backend when none is planned yet.
	Run(ctx context.Context) error
}

// ResumeService re-registers the periodic backfill trigger on startup when
// the backend shows an unfinished backfill.
type ResumeService interface {
	// CheckAndSchedule fetches the backend cursor and (re-)registers the
	// periodic trigger if chunks remain. Registration uses the keep policy,
	// so an already-present trigger is never duplicated.
	CheckAndSchedule(ctx context.Context) error
}
