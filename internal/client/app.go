// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/twinlab/healthsync/internal/adapter"
	"github.com/twinlab/healthsync/internal/config"
	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/internal/service"
	"github.com/twinlab/healthsync/internal/store"
	"github.com/twinlab/healthsync/internal/tui"
	"github.com/twinlab/healthsync/internal/workers"
	"github.com/twinlab/healthsync/models"
)

var ErrNoCredentials = errors.New("no stored session and no credentials configured")

// App is the foreground companion application.
type App struct {
	services *service.Services
	backend  adapter.BackendAdapter
	prefs    store.PreferenceStore
	workers  *workers.Workers
	ui       *tui.TUI

	auth   config.ClientAuth
	logger *logger.Logger
}

// NewApp assembles the companion runtime from its already-constructed parts.
func NewApp(
	services *service.Services,
	backend adapter.BackendAdapter,
	prefs store.PreferenceStore,
	ws *workers.Workers,
	ui *tui.TUI,
	auth config.ClientAuth,
	logger *logger.Logger,
) (*App, error) {
	return &App{
		services: services,
		backend:  backend,
		prefs:    prefs,
		workers:  ws,
		ui:       ui,
		auth:     auth,
		logger:   logger,
	}, nil
}

// Run drives one foreground session: restore or establish identity, run the
// priority sync, schedule the backfill resume check, kick the background
// workers, and show the live progress screen until the user leaves.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.ensureSession(ctx); err != nil {
		return fmt.Errorf("ensure session: %w", err)
	}

	if err := a.services.PrioritySync.Run(ctx); err != nil {
		if errors.Is(err, service.ErrPermissionsDenied) {
			return fmt.Errorf("priority sync: %w", err)
		}
		// offline launches still get the UI and the resume check
		a.logger.Warn().
			Err(err).
			Str("func", "App.Run").
			Msg("priority sync failed, continuing")
	}

	if err := a.services.Resume.CheckAndSchedule(ctx); err != nil {
		a.logger.Warn().
			Err(err).
			Str("func", "App.Run").
			Msg("resume check failed")
	}

	go a.workers.Run(ctx)

	if err := a.ui.ShowProgress(); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("progress screen: %w", err)
	}
	return nil
}

// ensureSession restores the stored identity into the adapter, or performs a
// fresh login with the configured credentials and persists the session.
func (a *App) ensureSession(ctx context.Context) error {
	token, err := a.prefs.GetString(ctx, store.KeyAuthToken)
	switch {
	case err == nil:
		a.backend.SetToken(token)
		a.logger.Debug().Str("func", "App.ensureSession").Msg("session restored from preferences")
		return nil
	case !errors.Is(err, store.ErrPreferenceNotFound):
		return fmt.Errorf("read stored token: %w", err)
	}

	if a.auth.Login == "" {
		return ErrNoCredentials
	}

	issued, err := a.backend.Login(ctx, models.User{Login: a.auth.Login, Password: a.auth.Password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err = a.prefs.SetString(ctx, store.KeyUserID, strconv.FormatInt(issued.UserID, 10)); err != nil {
		return fmt.Errorf("persist user id: %w", err)
	}
	if err = a.prefs.SetString(ctx, store.KeyAuthToken, issued.SignedString); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	a.logger.Info().
		Int64("user_id", issued.UserID).
		Str("func", "App.ensureSession").
		Msg("logged in and persisted session")
	return nil
}
