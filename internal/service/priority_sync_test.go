package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/internal/mock"
	"github.com/twinlab/healthsync/internal/service"
	"github.com/twinlab/healthsync/internal/store"
	"github.com/twinlab/healthsync/models"
)

type priorityMocks struct {
	backend  *mock.MockBackendAdapter
	provider *mock.MockProvider
	prefs    *mock.MockPreferenceStore
}

func newPrioritySync(t *testing.T, now time.Time) (service.PrioritySyncService, priorityMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := priorityMocks{
		backend:  mock.NewMockBackendAdapter(ctrl),
		provider: mock.NewMockProvider(ctrl),
		prefs:    mock.NewMockPreferenceStore(ctrl),
	}

	svc := service.NewPrioritySyncService(
		m.backend, m.provider, m.prefs, nil, fixedClock{now: now},
		7, 13, logger.Nop(),
	)
	return svc, m
}

func (m priorityMocks) stubIdentity() {
	m.prefs.EXPECT().GetString(gomock.Any(), store.KeyUserID).Return("42", nil).AnyTimes()
	m.prefs.EXPECT().GetString(gomock.Any(), store.KeyDeviceID).Return("device-1", nil).AnyTimes()
}

func TestPrioritySync_UploadsRecentWindowAndPlansBackfill(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newPrioritySync(t, now)
	m.stubIdentity()

	m.provider.EXPECT().RequestAuthorization(gomock.Any(), models.DefaultSampleTypes).Return(true, nil)
	m.provider.EXPECT().
		QueryData(gomock.Any(), models.DefaultSampleTypes, now.AddDate(0, 0, -7), now).
		Return([]models.HealthSample{{Type: models.SampleTypeSteps, Value: 9000}}, nil)

	m.backend.EXPECT().
		UploadSamples(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UploadSamplesRequest) error {
			assert.Equal(t, models.PriorityChunkIndex, req.ChunkIndex)
			assert.Equal(t, int64(42), req.UserID)
			assert.Len(t, req.Samples, 1)
			return nil
		})

	m.prefs.EXPECT().SetTime(gomock.Any(), store.KeyLastSyncTime, now).Return(nil)

	// backend shows no backfill yet: a fresh plan is patched in
	m.backend.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{UserID: 42}, nil)
	m.backend.EXPECT().
		PatchProfileMetadata(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, patch models.ProfileMetadataPatch) error {
			assert.Equal(t, string(models.HistoricalSyncInProgress), patch["historical_sync.status"])
			assert.Equal(t, -1, patch["historical_sync.current_chunk"])
			assert.Equal(t, 13, patch["historical_sync.total_chunks"])
			assert.Equal(t, 0, patch["historical_sync.retry_count"])
			return nil
		})

	require.NoError(t, svc.Run(context.Background()))
}

func TestPrioritySync_ExistingPlanIsNotRestarted(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newPrioritySync(t, now)
	m.stubIdentity()

	m.provider.EXPECT().RequestAuthorization(gomock.Any(), gomock.Any()).Return(true, nil)
	m.provider.EXPECT().QueryData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.prefs.EXPECT().SetTime(gomock.Any(), store.KeyLastSyncTime, now).Return(nil)

	m.backend.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{
		UserID: 42,
		HistoricalSync: &models.HistoricalSyncState{
			Status:       models.HistoricalSyncCompleted,
			CurrentChunk: 12,
			TotalChunks:  13,
		},
	}, nil)
	// no PatchProfileMetadata expectation: a finished backfill must not restart

	require.NoError(t, svc.Run(context.Background()))
}

func TestPrioritySync_PermissionsDenied(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newPrioritySync(t, now)
	m.stubIdentity()

	m.provider.EXPECT().RequestAuthorization(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.Run(context.Background())
	assert.ErrorIs(t, err, service.ErrPermissionsDenied)
}

func TestPrioritySync_GeneratesDeviceIDOnFirstRun(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newPrioritySync(t, now)

	var generated string
	gomock.InOrder(
		m.prefs.EXPECT().GetString(gomock.Any(), store.KeyDeviceID).Return("", store.ErrPreferenceNotFound),
		m.prefs.EXPECT().
			SetString(gomock.Any(), store.KeyDeviceID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value string) error {
				generated = value
				return nil
			}),
		m.prefs.EXPECT().GetString(gomock.Any(), store.KeyUserID).Return("42", nil),
		m.prefs.EXPECT().
			GetString(gomock.Any(), store.KeyDeviceID).
			DoAndReturn(func(context.Context, string) (string, error) {
				return generated, nil
			}),
	)

	m.provider.EXPECT().RequestAuthorization(gomock.Any(), gomock.Any()).Return(true, nil)
	m.provider.EXPECT().QueryData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.prefs.EXPECT().SetTime(gomock.Any(), store.KeyLastSyncTime, now).Return(nil)
	m.backend.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{UserID: 42}, nil)
	m.backend.EXPECT().PatchProfileMetadata(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.Run(context.Background()))
	assert.NotEmpty(t, generated)
}

func TestPrioritySync_UploadFailure(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, m := newPrioritySync(t, now)
	m.stubIdentity()

	m.provider.EXPECT().RequestAuthorization(gomock.Any(), gomock.Any()).Return(true, nil)
	m.provider.EXPECT().
		QueryData(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.HealthSample{{Type: models.SampleTypeSteps, Value: 1}}, nil)
	m.backend.EXPECT().UploadSamples(gomock.Any(), gomock.Any()).Return(assert.AnError)

	err := svc.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
