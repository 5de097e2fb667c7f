package health

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/models"
)

const testExport = `{
	"export_date": "2026-03-10T08:00:00Z",
	"samples": [
		{"type": "steps", "value": 8421, "unit": "count",
		 "start": "2026-03-01T00:00:00Z", "end": "2026-03-01T23:59:59Z",
		 "source_device": "watch-1"},
		{"type": "heart_rate", "value": 61, "unit": "bpm",
		 "start": "2026-03-02T07:30:00Z"},
		{"type": "weight", "value": 72.4, "unit": "kg",
		 "start": "2026-02-01T09:00:00Z", "end": "2026-02-01T09:00:00Z"},
		{"type": "steps", "value": 3000, "unit": "count",
		 "start": "not-a-timestamp"}
	]
}`

func writeExport(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileProvider_QueryData_FiltersByTypeAndRange(t *testing.T) {
	p := NewFileProvider(writeExport(t, testExport), logger.Nop())

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	samples, err := p.QueryData(context.Background(), []string{models.SampleTypeSteps, models.SampleTypeHeartRate}, from, to)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, models.SampleTypeSteps, samples[0].Type)
	assert.Equal(t, float64(8421), samples[0].Value)
	assert.Equal(t, "watch-1", samples[0].SourceDevice)

	// Point-in-time sample without an explicit end.
	assert.Equal(t, models.SampleTypeHeartRate, samples[1].Type)
	assert.Equal(t, samples[1].Start, samples[1].End)
}

func TestFileProvider_QueryData_OldSampleOutsideRange(t *testing.T) {
	p := NewFileProvider(writeExport(t, testExport), logger.Nop())

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	samples, err := p.QueryData(context.Background(), []string{models.SampleTypeWeight}, from, to)
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestFileProvider_QueryData_MissingFile(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "absent.json"), logger.Nop())

	_, err := p.QueryData(context.Background(), models.DefaultSampleTypes, time.Time{}, time.Now())
	require.Error(t, err)
}

func TestFileProvider_Permissions(t *testing.T) {
	path := writeExport(t, testExport)
	p := NewFileProvider(path, logger.Nop())

	granted, err := p.HasPermissions(context.Background(), models.DefaultSampleTypes)
	require.NoError(t, err)
	require.NotNil(t, granted)
	assert.True(t, *granted)

	ok, err := p.RequestAuthorization(context.Background(), models.DefaultSampleTypes)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileProvider_Permissions_MissingFile(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "absent.json"), logger.Nop())

	granted, err := p.HasPermissions(context.Background(), models.DefaultSampleTypes)
	require.NoError(t, err)
	require.NotNil(t, granted)
	assert.False(t, *granted)

	ok, err := p.RequestAuthorization(context.Background(), models.DefaultSampleTypes)
	require.NoError(t, err)
	assert.False(t, ok)
}
