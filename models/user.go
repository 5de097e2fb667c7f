package models

import "time"

// User represents an account used for authentication against the backend.
type User struct {
	// UserID is the backend-assigned unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password is the credential sent during login. Never persisted locally.
	Password string `json:"password,omitempty"`

	// CreatedAt is when the account was created, as reported by the backend.
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Profile is the backend user profile envelope. Metadata holds the raw
// profile metadata document, of which `historical_sync` is the backfill
// cursor (see [HistoricalSyncState]).
type Profile struct {
	UserID         int64                `json:"user_id"`
	Login          string               `json:"login"`
	HistoricalSync *HistoricalSyncState `json:"historical_sync,omitempty"`
}
