package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPreferenceNotFound is returned when a read targets a preference key
	// that has never been written or has been removed.
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrInvalidPreferenceValue is returned when a stored value cannot be
	// converted to the requested type (e.g. a non-boolean read as bool).
	ErrInvalidPreferenceValue = errors.New("invalid preference value")
)
