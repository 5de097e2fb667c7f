// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/twinlab/healthsync/models"
)

type progressMsg models.SyncProgress

// progressClosedMsg signals that the publisher closed the subscription.
type progressClosedMsg struct{}

// progressModel renders the live sync progress fed by the publisher channel.
// It is a pure consumer: snapshots arrive as messages, the model never talks
// to the services directly.
type progressModel struct {
	updates <-chan models.SyncProgress

	spinner spinner.Model
	bar     progress.Model

	latest   models.SyncProgress
	hasData  bool
	detached bool

	quitByUser bool
}

func newProgressModel(updates <-chan models.SyncProgress) progressModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return progressModel{
		updates: updates,
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForProgress(m.updates))
}

// waitForProgress blocks on the subscription channel and re-arms itself after
// every delivered snapshot.
func waitForProgress(updates <-chan models.SyncProgress) tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-updates
		if !ok {
			return progressClosedMsg{}
		}
		return progressMsg(snapshot)
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.latest = models.SyncProgress(msg)
		m.hasData = true
		return m, waitForProgress(m.updates)

	case progressClosedMsg:
		m.detached = true
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case "q", "esc", "enter":
			// any key is a natural dismiss once the attempt settled
			if m.settled() {
				return m, tea.Quit
			}
			if msg.String() != "enter" {
				m.quitByUser = true
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// settled reports that the current attempt reached a terminal snapshot.
func (m progressModel) settled() bool {
	return m.hasData && (m.latest.IsComplete || m.latest.IsError)
}

func (m progressModel) View() string {
	if !m.hasData {
		body := m.spinner.View() + " Waiting for sync activity..."
		return renderPage("HEALTH SYNC", body, "q: close")
	}

	out := ""

	switch {
	case m.latest.IsError:
		out += errorStyle.Render("Sync attempt failed") + "\n"
		if m.latest.ErrorMessage != "" {
			out += m.latest.ErrorMessage + "\n"
		}
		out += "\nThe sync will retry automatically in the background.\n"
	case m.latest.IsComplete:
		out += completeStyle.Render("Sync complete") + "\n"
	default:
		out += m.spinner.View() + " " + m.latest.CurrentActivity + "\n"
	}

	out += "\n"
	out += m.bar.ViewAs(m.ratio()) + "\n"
	out += activityStyle.Render(formatCount(m.latest.ProcessedDataPoints, m.latest.TotalDataPoints)) + "\n"

	if !m.latest.SyncStartTime.IsZero() && !m.latest.LastUpdateTime.IsZero() {
		elapsed := m.latest.LastUpdateTime.Sub(m.latest.SyncStartTime).Round(time.Second)
		if elapsed > 0 {
			out += activityStyle.Render("elapsed: "+elapsed.String()) + "\n"
		}
	}

	if m.detached {
		out += "\n" + helpStyle.Render("(live updates ended)") + "\n"
	}

	hotKeys := "q: close"
	if m.settled() {
		hotKeys = "enter/q: close"
	}
	return renderPage("HEALTH SYNC", out, hotKeys)
}

func (m progressModel) ratio() float64 {
	if m.latest.IsComplete {
		return 1
	}
	if m.latest.TotalDataPoints <= 0 {
		return 0
	}
	r := float64(m.latest.ProcessedDataPoints) / float64(m.latest.TotalDataPoints)
	if r > 1 {
		return 1
	}
	return r
}
