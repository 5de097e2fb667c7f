// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

// Package scheduler triggers registered tasks on a periodic interval.
//
// [TaskScheduler] mirrors the contract of OS background-task frameworks:
// named periodic registrations, execution constraints, and an
// existing-registration policy so re-registering on every app launch never
// duplicates a trigger. The in-process implementation drives tasks with a
// ticker goroutine per registration.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/twinlab/healthsync/internal/logger"
)

//go:generate mockgen -source=scheduler.go -destination=../mock/task_scheduler_mock.go -package=mock

// TaskHistoricalSync is the registration name of the periodic backfill step.
const TaskHistoricalSync = "historical_sync"

// DefaultInterval is the periodic trigger interval used when the
// configuration does not override it.
const DefaultInterval = 15 * time.Minute

// Constraints describe the conditions under which a task should run. The
// in-process scheduler records them for the platform bridge; it cannot
// evaluate battery or connectivity itself.
type Constraints struct {
	NetworkRequired       bool
	RequiresBatteryNotLow bool
}

// ExistingPolicy controls what RegisterPeriodic does when a registration
// with the same name already exists.
type ExistingPolicy int

const (
	// ExistingPolicyKeep leaves the running registration untouched.
	ExistingPolicyKeep ExistingPolicy = iota
	// ExistingPolicyReplace stops the running registration and starts a
	// fresh one.
	ExistingPolicyReplace
)

// TaskFunc is one periodic task execution. Returning false asks the
// scheduler to cancel the registration; returning true keeps it.
type TaskFunc func(ctx context.Context) bool

// TaskScheduler manages named periodic task registrations.
type TaskScheduler interface {
	// RegisterPeriodic starts triggering task every interval under the
	// given name. When a registration with the same name exists, policy
	// decides whether it is kept or replaced. The registration lives until
	// Cancel is called, ctx is cancelled, or the task returns false.
	RegisterPeriodic(ctx context.Context, name string, interval time.Duration, constraints Constraints, policy ExistingPolicy, task TaskFunc)

	// Cancel stops the named registration and waits for an in-flight
	// execution to finish. No-op when the name is not registered.
	Cancel(name string)

	// IsRegistered reports whether a registration with the given name is
	// currently active.
	IsRegistered(name string) bool
}

type taskEntry struct {
	cancel context.CancelFunc
	wg     *sync.WaitGroup
}

type tickerScheduler struct {
	mu      sync.Mutex
	entries map[string]*taskEntry

	logger *logger.Logger
}

// NewTickerScheduler returns an in-process [TaskScheduler] implementation.
func NewTickerScheduler(logger *logger.Logger) TaskScheduler {
	return &tickerScheduler{
		entries: make(map[string]*taskEntry),
		logger:  logger,
	}
}

// RegisterPeriodic implements [TaskScheduler]. If interval is zero or
// negative it defaults to [DefaultInterval].
func (s *tickerScheduler) RegisterPeriodic(ctx context.Context, name string, interval time.Duration, constraints Constraints, policy ExistingPolicy, task TaskFunc) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	s.mu.Lock()
	for {
		entry, exists := s.entries[name]
		if !exists {
			break
		}
		if policy == ExistingPolicyKeep {
			s.mu.Unlock()
			s.logger.Debug().
				Str("task", name).
				Msg("periodic task already registered, keeping existing registration")
			return
		}

		// Detach the entry before unlocking so no concurrent register can
		// overwrite it while we wait; re-check after relocking in case one
		// slipped a fresh entry in.
		delete(s.entries, name)
		s.mu.Unlock()
		entry.cancel()
		entry.wg.Wait()
		s.mu.Lock()
	}

	taskCtx, cancel := context.WithCancel(ctx)
	wg := &sync.WaitGroup{}
	s.entries[name] = &taskEntry{cancel: cancel, wg: wg}
	wg.Add(1)
	s.mu.Unlock()

	s.logger.Info().
		Str("task", name).
		Dur("interval", interval).
		Bool("network_required", constraints.NetworkRequired).
		Bool("battery_not_low", constraints.RequiresBatteryNotLow).
		Msg("periodic task registered")

	go func() {
		defer wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-taskCtx.Done():
				return
			case <-t.C:
				if !task(taskCtx) {
					s.remove(name)
					s.logger.Info().
						Str("task", name).
						Msg("periodic task requested cancellation")
					return
				}
			}
		}
	}()
}

// Cancel implements [TaskScheduler].
func (s *tickerScheduler) Cancel(name string) {
	s.mu.Lock()
	entry, exists := s.entries[name]
	delete(s.entries, name)
	s.mu.Unlock()

	if !exists {
		return
	}

	entry.cancel()
	entry.wg.Wait()
}

// IsRegistered implements [TaskScheduler].
func (s *tickerScheduler) IsRegistered(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.entries[name]
	return exists
}

// remove drops the registry entry without waiting; called from inside the
// task goroutine, where waiting on its own WaitGroup would deadlock.
func (s *tickerScheduler) remove(name string) {
	s.mu.Lock()
	entry, exists := s.entries[name]
	delete(s.entries, name)
	s.mu.Unlock()

	if exists {
		entry.cancel()
	}
}
