package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/twinlab/healthsync/internal/store"
)

// loadIdentity reads the stored user and device identity. Absent or
// malformed values yield [ErrMissingIdentity]; other store failures are
// passed through.
func loadIdentity(ctx context.Context, prefs store.PreferenceStore) (userID int64, deviceID string, err error) {
	rawUserID, err := prefs.GetString(ctx, store.KeyUserID)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return 0, "", ErrMissingIdentity
	}
	if err != nil {
		return 0, "", fmt.Errorf("read user id: %w", err)
	}

	userID, err = strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: stored user id %q is not numeric", ErrMissingIdentity, rawUserID)
	}

	deviceID, err = prefs.GetString(ctx, store.KeyDeviceID)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return 0, "", ErrMissingIdentity
	}
	if err != nil {
		return 0, "", fmt.Errorf("read device id: %w", err)
	}

	return userID, deviceID, nil
}
