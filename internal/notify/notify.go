// Package notify delivers user-facing notifications.
//
// The in-process implementation writes them to the structured log; a
// platform bridge can replace it where real system notifications exist.
package notify

import (
	"time"

	"github.com/twinlab/healthsync/internal/logger"
)

//go:generate mockgen -source=notify.go -destination=../mock/notifier_mock.go -package=mock

// Notifier shows a notification to the user.
type Notifier interface {
	// Show displays a notification with the given title and message for
	// roughly duration d. Implementations must not block the caller.
	Show(title, message string, d time.Duration)
}

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that records notifications in the
// structured log.
func NewLogNotifier(logger *logger.Logger) Notifier {
	return &logNotifier{logger: logger}
}

// Show implements [Notifier].
func (n *logNotifier) Show(title, message string, d time.Duration) {
	n.logger.Info().
		Str("title", title).
		Str("message", message).
		Dur("duration", d).
		Msg("notification")
}
