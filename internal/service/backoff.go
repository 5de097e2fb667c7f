// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package service

import "time"

// MaxBackoffMinutes caps the exponential retry delay of the backfill.
const MaxBackoffMinutes = 30

// BackoffDelay returns the delay to wait after retryCount consecutive
// failures: 2^retryCount minutes, capped at [MaxBackoffMinutes]. A zero
// retry count means no delay.
func BackoffDelay(retryCount int) time.Duration {
	if retryCount <= 0 {
		return 0
	}
	if retryCount >= 5 {
		return MaxBackoffMinutes * time.Minute
	}

	minutes := 1 << retryCount
	if minutes > MaxBackoffMinutes {
		minutes = MaxBackoffMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// NextEligibleTime returns the earliest moment a chunk may be retried,
// given the cursor's last mutation time and its consecutive failure count.
// Pure so the gate can be exercised without a scheduler.
func NextEligibleTime(lastUpdated time.Time, retryCount int) time.Time {
	return lastUpdated.Add(BackoffDelay(retryCount))
}
