// Package workers runs sync work outside the foreground request path.
//
// [BackgroundInvocationAdapter] is the boundary between the OS-style
// periodic trigger and the backfill orchestrator: it owns lazy construction
// of its collaborators, the cheap identity pre-check, panic containment, and
// the mapping of step outcomes to scheduler-facing [TaskResult] values.
package workers

import "context"

// Worker is implemented by anything the app starts once at launch.
//
// Implementations are expected to complete their work or spawn goroutines
// internally.
type Worker interface {
	Run(ctx context.Context)
}
