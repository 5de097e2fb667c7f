package service

import (
	"fmt"
	"time"
)

// StepKind tags the result of one backfill step.
type StepKind int

const (
	// StepAdvanced means a chunk was uploaded and acknowledged.
	StepAdvanced StepKind = iota
	// StepRetryScheduled means the step failed and should be retried later.
	StepRetryScheduled
	// StepSkippedBackoff means the backoff gate refused to attempt anything.
	StepSkippedBackoff
	// StepTerminated means no further steps are needed and the periodic
	// trigger can be cancelled.
	StepTerminated
)

// TerminationReason explains a [StepTerminated] outcome.
type TerminationReason string

const (
	ReasonMissingIdentity    TerminationReason = "missing_identity"
	ReasonNotPlanned         TerminationReason = "not_planned"
	ReasonAlreadyComplete    TerminationReason = "already_complete"
	ReasonAllChunksProcessed TerminationReason = "all_chunks_processed"
)

// StepOutcome is the tagged result of one orchestrator step. Exactly one of
// the payload fields is meaningful, selected by Kind.
type StepOutcome struct {
	Kind StepKind

	// Chunk is the chunk index that advanced (StepAdvanced).
	Chunk int

	// RetryAfter is the suggested delay before retrying (StepRetryScheduled).
	RetryAfter time.Duration

	// Remaining is the time left until the backoff gate opens
	// (StepSkippedBackoff).
	Remaining time.Duration

	// Reason explains the termination (StepTerminated).
	Reason TerminationReason
}

func Advanced(chunk int) StepOutcome {
	return StepOutcome{Kind: StepAdvanced, Chunk: chunk}
}

func RetryScheduled(after time.Duration) StepOutcome {
	return StepOutcome{Kind: StepRetryScheduled, RetryAfter: after}
}

func SkippedBackoff(remaining time.Duration) StepOutcome {
	return StepOutcome{Kind: StepSkippedBackoff, Remaining: remaining}
}

func Terminated(reason TerminationReason) StepOutcome {
	return StepOutcome{Kind: StepTerminated, Reason: reason}
}

// Terminal reports whether the periodic trigger should be cancelled.
func (o StepOutcome) Terminal() bool {
	return o.Kind == StepTerminated
}

// String renders the outcome for logging.
func (o StepOutcome) String() string {
	switch o.Kind {
	case StepAdvanced:
		return fmt.Sprintf("advanced(chunk=%d)", o.Chunk)
	case StepRetryScheduled:
		return fmt.Sprintf("retryScheduled(after=%s)", o.RetryAfter)
	case StepSkippedBackoff:
		return fmt.Sprintf("skippedBackoff(remaining=%s)", o.Remaining)
	case StepTerminated:
		return fmt.Sprintf("terminated(%s)", o.Reason)
	default:
		return fmt.Sprintf("unknown(%d)", int(o.Kind))
	}
}
