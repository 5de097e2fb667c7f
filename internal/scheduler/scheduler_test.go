package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinlab/healthsync/internal/logger"
)

func TestTickerScheduler_RunsPeriodically(t *testing.T) {
	s := NewTickerScheduler(logger.Nop())
	defer s.Cancel(TaskHistoricalSync)

	var runs atomic.Int32
	s.RegisterPeriodic(context.Background(), TaskHistoricalSync, 10*time.Millisecond, Constraints{}, ExistingPolicyKeep, func(context.Context) bool {
		runs.Add(1)
		return true
	})

	require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.True(t, s.IsRegistered(TaskHistoricalSync))
}

func TestTickerScheduler_KeepPolicyDoesNotReplace(t *testing.T) {
	s := NewTickerScheduler(logger.Nop())
	defer s.Cancel("job")

	var first, second atomic.Int32
	s.RegisterPeriodic(context.Background(), "job", 10*time.Millisecond, Constraints{}, ExistingPolicyKeep, func(context.Context) bool {
		first.Add(1)
		return true
	})
	s.RegisterPeriodic(context.Background(), "job", 10*time.Millisecond, Constraints{}, ExistingPolicyKeep, func(context.Context) bool {
		second.Add(1)
		return true
	})

	require.Eventually(t, func() bool { return first.Load() >= 2 }, time.Second, 5*time.Millisecond)
	assert.Zero(t, second.Load())
}

func TestTickerScheduler_ReplacePolicyStopsOldTask(t *testing.T) {
	s := NewTickerScheduler(logger.Nop())
	defer s.Cancel("job")

	var first, second atomic.Int32
	s.RegisterPeriodic(context.Background(), "job", 10*time.Millisecond, Constraints{}, ExistingPolicyKeep, func(context.Context) bool {
		first.Add(1)
		return true
	})
	s.RegisterPeriodic(context.Background(), "job", 10*time.Millisecond, Constraints{}, ExistingPolicyReplace, func(context.Context) bool {
		second.Add(1)
		return true
	})

	require.Eventually(t, func() bool { return second.Load() >= 2 }, time.Second, 5*time.Millisecond)

	firstRuns := first.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, firstRuns, first.Load(), "replaced task must not keep running")
}

// Racing replace registrations must never orphan a ticker goroutine: after
// the dust settles exactly one registration exists and Cancel stops all runs.
func TestTickerScheduler_ConcurrentReplaceLeavesSingleTask(t *testing.T) {
	s := NewTickerScheduler(logger.Nop())

	var runs atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RegisterPeriodic(context.Background(), "job", 5*time.Millisecond, Constraints{}, ExistingPolicyReplace, func(context.Context) bool {
				runs.Add(1)
				return true
			})
		}()
	}
	wg.Wait()

	require.True(t, s.IsRegistered("job"))
	require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, time.Millisecond)

	s.Cancel("job")
	assert.False(t, s.IsRegistered("job"))

	time.Sleep(20 * time.Millisecond)
	stopped := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load(), "a surviving goroutine would keep running")
}

func TestTickerScheduler_TaskReturningFalseCancelsRegistration(t *testing.T) {
	s := NewTickerScheduler(logger.Nop())

	var runs atomic.Int32
	s.RegisterPeriodic(context.Background(), "job", 5*time.Millisecond, Constraints{}, ExistingPolicyKeep, func(context.Context) bool {
		runs.Add(1)
		return false
	})

	require.Eventually(t, func() bool { return !s.IsRegistered("job") }, time.Second, 5*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestTickerScheduler_Cancel(t *testing.T) {
	s := NewTickerScheduler(logger.Nop())

	s.RegisterPeriodic(context.Background(), "job", time.Hour, Constraints{}, ExistingPolicyKeep, func(context.Context) bool { return true })
	require.True(t, s.IsRegistered("job"))

	s.Cancel("job")
	assert.False(t, s.IsRegistered("job"))

	// cancelling an unknown name is a no-op
	s.Cancel("unknown")
}

func TestTickerScheduler_ContextCancellationStopsTask(t *testing.T) {
	s := NewTickerScheduler(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	var runs atomic.Int32
	s.RegisterPeriodic(ctx, "job", 5*time.Millisecond, Constraints{}, ExistingPolicyKeep, func(context.Context) bool {
		runs.Add(1)
		return true
	})

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, time.Millisecond)
	cancel()

	time.Sleep(20 * time.Millisecond)
	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}
