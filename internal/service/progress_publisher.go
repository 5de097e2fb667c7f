package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/internal/store"
	"github.com/twinlab/healthsync/models"
)

const subscriberBufferSize = 64

// SyncProgressPublisher fans progress snapshots out to any number of
// subscribers in publish order. It tolerates zero listeners, keeps the last
// published value for late joiners, and best-effort persists a JSON snapshot
// to the preference store so a restarted foreground app can show where the
// previous attempt left off.
//
// The publisher is an owned, injected object; there is no package-level
// instance.
type SyncProgressPublisher struct {
	mu          sync.Mutex
	subscribers map[chan models.SyncProgress]struct{}
	current     models.SyncProgress
	hasCurrent  bool

	prefs  store.PreferenceStore
	logger *logger.Logger
}

// NewSyncProgressPublisher returns an empty publisher. prefs may be nil, in
// which case snapshots are not persisted.
func NewSyncProgressPublisher(prefs store.PreferenceStore, logger *logger.Logger) *SyncProgressPublisher {
	return &SyncProgressPublisher{
		subscribers: make(map[chan models.SyncProgress]struct{}),
		prefs:       prefs,
		logger:      logger,
	}
}

// Subscribe registers a new listener and returns its channel. The channel is
// buffered; when a slow listener lets the buffer fill, the oldest snapshot
// is dropped so publishing never blocks and per-listener order is preserved.
func (p *SyncProgressPublisher) Subscribe() <-chan models.SyncProgress {
	ch := make(chan models.SyncProgress, subscriberBufferSize)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers[ch] = struct{}{}
	if p.hasCurrent {
		ch <- p.current
	}
	return ch
}

// Unsubscribe removes the listener and closes its channel. No-op for an
// unknown channel.
func (p *SyncProgressPublisher) Unsubscribe(ch <-chan models.SyncProgress) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for sub := range p.subscribers {
		if sub == ch {
			delete(p.subscribers, sub)
			close(sub)
			return
		}
	}
}

// Publish delivers progress to every subscriber and records it as the
// current value.
func (p *SyncProgressPublisher) Publish(ctx context.Context, progress models.SyncProgress) {
	p.mu.Lock()
	p.current = progress
	p.hasCurrent = true

	for sub := range p.subscribers {
		select {
		case sub <- progress:
		default:
			// buffer full: drop the oldest snapshot to make room
			select {
			case <-sub:
			default:
			}
			sub <- progress
		}
	}
	p.mu.Unlock()

	p.persistSnapshot(ctx, progress)
}

// Current returns the last published snapshot, if any.
func (p *SyncProgressPublisher) Current() (models.SyncProgress, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current, p.hasCurrent
}

func (p *SyncProgressPublisher) persistSnapshot(ctx context.Context, progress models.SyncProgress) {
	if p.prefs == nil {
		return
	}

	raw, err := json.Marshal(progress)
	if err != nil {
		p.logger.Warn().
			Err(err).
			Str("func", "SyncProgressPublisher.persistSnapshot").
			Msg("failed to marshal progress snapshot")
		return
	}

	if err = p.prefs.SetString(ctx, store.KeySyncProgressSnapshot, string(raw)); err != nil {
		p.logger.Warn().
			Err(err).
			Str("func", "SyncProgressPublisher.persistSnapshot").
			Msg("failed to persist progress snapshot")
	}
}
