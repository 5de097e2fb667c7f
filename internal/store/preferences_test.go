// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinlab/healthsync/internal/logger"
)

func newTestRepo(t *testing.T) (PreferenceStore, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewPreferenceRepository(db, logger.Nop()), mock
}

// ── GetString ────────────────────────────────────────────────────────────────

func TestPreferenceRepository_GetString_Found(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT value FROM preferences WHERE key = \?`).
		WithArgs(KeyUserID).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("42"))

	value, err := repo.GetString(context.Background(), KeyUserID)
	require.NoError(t, err)
	assert.Equal(t, "42", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_GetString_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT value FROM preferences`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.GetString(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestPreferenceRepository_GetString_QueryError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT value FROM preferences`).
		WithArgs(KeyDeviceID).
		WillReturnError(assert.AnError)

	_, err := repo.GetString(context.Background(), KeyDeviceID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPreferenceNotFound)
}

// ── SetString ────────────────────────────────────────────────────────────────

func TestPreferenceRepository_SetString_Upserts(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`INSERT INTO preferences \(key,value,updated_at\)`).
		WithArgs(KeyDeviceID, "device-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SetString(context.Background(), KeyDeviceID, "device-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_SetString_ExecError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`INSERT INTO preferences`).
		WillReturnError(assert.AnError)

	err := repo.SetString(context.Background(), KeyDeviceID, "device-1")
	require.Error(t, err)
}

// ── bool round trip ──────────────────────────────────────────────────────────

func TestPreferenceRepository_GetBool(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT value FROM preferences`).
		WithArgs(KeyHistoricalSyncComplete).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("true"))

	value, err := repo.GetBool(context.Background(), KeyHistoricalSyncComplete)
	require.NoError(t, err)
	assert.True(t, value)
}

func TestPreferenceRepository_GetBool_InvalidValue(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT value FROM preferences`).
		WithArgs(KeyHistoricalSyncComplete).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("yes please"))

	_, err := repo.GetBool(context.Background(), KeyHistoricalSyncComplete)
	assert.ErrorIs(t, err, ErrInvalidPreferenceValue)
}

func TestPreferenceRepository_SetBool(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`INSERT INTO preferences`).
		WithArgs(KeyHistoricalSyncComplete, "true", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SetBool(context.Background(), KeyHistoricalSyncComplete, true)
	require.NoError(t, err)
}

// ── time round trip ──────────────────────────────────────────────────────────

func TestPreferenceRepository_GetTime(t *testing.T) {
	repo, mock := newTestRepo(t)

	stamp := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	mock.ExpectQuery(`SELECT value FROM preferences`).
		WithArgs(KeyLastSyncTime).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(stamp.Format(time.RFC3339)))

	value, err := repo.GetTime(context.Background(), KeyLastSyncTime)
	require.NoError(t, err)
	assert.True(t, stamp.Equal(value))
}

func TestPreferenceRepository_GetTime_InvalidValue(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT value FROM preferences`).
		WithArgs(KeyLastSyncTime).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("yesterday"))

	_, err := repo.GetTime(context.Background(), KeyLastSyncTime)
	assert.ErrorIs(t, err, ErrInvalidPreferenceValue)
}

// ── Remove ───────────────────────────────────────────────────────────────────

func TestPreferenceRepository_Remove(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`DELETE FROM preferences WHERE key = \?`).
		WithArgs(KeyAuthToken).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Remove(context.Background(), KeyAuthToken)
	require.NoError(t, err)
}

func TestPreferenceRepository_Remove_AbsentKeyIsNoError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`DELETE FROM preferences`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Remove(context.Background(), "missing")
	require.NoError(t, err)
}
