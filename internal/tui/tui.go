// Package tui renders the companion's terminal UI: a single live progress
// screen driven by sync progress snapshots.
package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

// TUI owns the terminal frontend. It subscribes to the progress publisher for
// the lifetime of each screen and detaches on exit.
type TUI struct {
	publisher *service.SyncProgressPublisher
}

func New(publisher *service.SyncProgressPublisher, _ *logger.Logger) (*TUI, error) {
	return &TUI{publisher: publisher}, nil
}

// ShowProgress runs the progress screen until the sync settles and the user
// dismisses it, or until the user quits early.
func (t *TUI) ShowProgress() error {
	updates := t.publisher.Subscribe()
	defer t.publisher.Unsubscribe(updates)

	model := newProgressModel(updates)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(progressModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
