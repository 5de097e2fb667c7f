package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Preference keys persisted by the companion. Both the foreground app and
// the background runner read these; writes are not atomic across processes,
// so nothing stored here is authoritative for the backfill cursor.
const (
	KeyUserID                    = "user_id"
	KeyDeviceID                  = "device_id"
	KeyAuthToken                 = "auth_token"
	KeyLastSyncTime              = "last_sync_time"
	KeyHistoricalSyncComplete    = "historical_sync_complete"
	KeyHistoricalSyncCompletedAt = "historical_sync_completed_at"
	KeySyncProgressSnapshot      = "sync_progress_snapshot"
)

// PreferenceStore is the durable local key-value store shared by the
// foreground app and the background task runner.
type PreferenceStore interface {
	// GetString returns the value stored under key.
	// Returns [ErrPreferenceNotFound] if the key is absent.
	GetString(ctx context.Context, key string) (string, error)

	// SetString stores value under key, replacing any previous value.
	SetString(ctx context.Context, key, value string) error

	// GetBool returns the boolean stored under key.
	// Returns [ErrPreferenceNotFound] if the key is absent.
	GetBool(ctx context.Context, key string) (bool, error)

	// SetBool stores a boolean under key.
	SetBool(ctx context.Context, key string, value bool) error

	// GetTime returns the RFC 3339 timestamp stored under key.
	// Returns [ErrPreferenceNotFound] if the key is absent.
	GetTime(ctx context.Context, key string) (time.Time, error)

	// SetTime stores a timestamp under key in RFC 3339 format.
	SetTime(ctx context.Context, key string, value time.Time) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
