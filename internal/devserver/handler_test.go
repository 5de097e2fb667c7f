// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package devserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/twinlab/healthsync/internal/config"
	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	h := NewHandler(config.ServerConfig{TokenSignKey: "test-sign-key", TokenDuration: time.Hour}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func loginTestUser(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	body, _ := json.Marshal(models.User{Login: "alice", Password: "secret"})
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	auth := resp.Header.Get("Authorization")
	require.NotEmpty(t, auth)
	return auth
}

func doAuthed(t *testing.T, srv *httptest.Server, method, path, auth string, payload any) *http.Response {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req, err := http.NewRequest(method, srv.URL+path, &body)
	require.NoError(t, err)
	req.Header.Set("Authorization", auth)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return buf.String()
}

func TestLogin_CreatesUserAndIssuesToken(t *testing.T) {
	srv := newTestServer(t)

	auth := loginTestUser(t, srv)
	assert.Contains(t, auth, "Bearer ")

	// same credentials log in again
	auth2 := loginTestUser(t, srv)
	assert.Contains(t, auth2, "Bearer ")
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := newTestServer(t)
	loginTestUser(t, srv)

	body, _ := json.Marshal(models.User{Login: "alice", Password: "wrong"})
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfile_RequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/profile")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfile_EmptyMetadataInitially(t *testing.T) {
	srv := newTestServer(t)
	auth := loginTestUser(t, srv)

	resp := doAuthed(t, srv, http.MethodGet, "/api/profile", auth, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.Equal(t, "alice", gjson.Get(body, "login").String())
	assert.False(t, gjson.Get(body, "metadata.historical_sync").Exists())
}

func TestPatchMetadata_DottedPaths(t *testing.T) {
	srv := newTestServer(t)
	auth := loginTestUser(t, srv)

	patch := models.ProfileMetadataPatch{
		"historical_sync.status":        "in_progress",
		"historical_sync.current_chunk": -1,
		"historical_sync.total_chunks":  13,
		"historical_sync.retry_count":   0,
	}
	resp := doAuthed(t, srv, http.MethodPatch, "/api/profile/metadata", auth, patch)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doAuthed(t, srv, http.MethodGet, "/api/profile", auth, nil)
	body := readBody(t, resp)
	assert.Equal(t, "in_progress", gjson.Get(body, "metadata.historical_sync.status").String())
	assert.Equal(t, int64(-1), gjson.Get(body, "metadata.historical_sync.current_chunk").Int())
	assert.Equal(t, int64(13), gjson.Get(body, "metadata.historical_sync.total_chunks").Int())
}

func TestUploadSamples_LengthMismatchRejected(t *testing.T) {
	srv := newTestServer(t)
	auth := loginTestUser(t, srv)

	req := models.UploadSamplesRequest{
		ChunkIndex: 0,
		Samples:    []models.HealthSample{{Type: models.SampleTypeSteps, Value: 1}},
		Length:     5,
	}
	resp := doAuthed(t, srv, http.MethodPost, "/api/health/samples", auth, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadSamples_Accepted(t *testing.T) {
	srv := newTestServer(t)
	auth := loginTestUser(t, srv)

	req := models.UploadSamplesRequest{
		ChunkIndex: models.PriorityChunkIndex,
		Samples:    []models.HealthSample{{Type: models.SampleTypeSteps, Value: 1}},
		Length:     1,
	}
	resp := doAuthed(t, srv, http.MethodPost, "/api/health/samples", auth, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestChunkComplete_EnforcesCurrentPlusOne(t *testing.T) {
	srv := newTestServer(t)
	auth := loginTestUser(t, srv)

	// plan the backfill
	plan := models.ProfileMetadataPatch{
		"historical_sync.status":        "in_progress",
		"historical_sync.current_chunk": -1,
		"historical_sync.total_chunks":  3,
		"historical_sync.retry_count":   0,
	}
	resp := doAuthed(t, srv, http.MethodPatch, "/api/profile/metadata", auth, plan)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// chunk 1 before chunk 0: conflict
	resp = doAuthed(t, srv, http.MethodPost, "/api/health/chunk-complete", auth,
		models.ChunkCompleteRequest{ChunkIndex: 1, TotalChunks: 3})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// chunk 0: accepted
	resp = doAuthed(t, srv, http.MethodPost, "/api/health/chunk-complete", auth,
		models.ChunkCompleteRequest{ChunkIndex: 0, TotalChunks: 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// duplicate chunk 0: conflict, cursor does not regress
	resp = doAuthed(t, srv, http.MethodPost, "/api/health/chunk-complete", auth,
		models.ChunkCompleteRequest{ChunkIndex: 0, TotalChunks: 3})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doAuthed(t, srv, http.MethodGet, "/api/profile", auth, nil)
	body := readBody(t, resp)
	assert.Equal(t, int64(0), gjson.Get(body, "metadata.historical_sync.current_chunk").Int())
	assert.Equal(t, "in_progress", gjson.Get(body, "metadata.historical_sync.status").String())
}

func TestChunkComplete_FinalChunkCompletesBackfill(t *testing.T) {
	srv := newTestServer(t)
	auth := loginTestUser(t, srv)

	plan := models.ProfileMetadataPatch{
		"historical_sync.status":        "in_progress",
		"historical_sync.current_chunk": -1,
		"historical_sync.total_chunks":  2,
		"historical_sync.retry_count":   0,
	}
	resp := doAuthed(t, srv, http.MethodPatch, "/api/profile/metadata", auth, plan)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for chunk := 0; chunk < 2; chunk++ {
		resp = doAuthed(t, srv, http.MethodPost, "/api/health/chunk-complete", auth,
			models.ChunkCompleteRequest{ChunkIndex: chunk, TotalChunks: 2})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp = doAuthed(t, srv, http.MethodGet, "/api/profile", auth, nil)
	body := readBody(t, resp)
	assert.Equal(t, "completed", gjson.Get(body, "metadata.historical_sync.status").String())
	assert.Equal(t, int64(1), gjson.Get(body, "metadata.historical_sync.current_chunk").Int())
}

func TestChunkComplete_ResetsRetryCount(t *testing.T) {
	srv := newTestServer(t)
	auth := loginTestUser(t, srv)

	plan := models.ProfileMetadataPatch{
		"historical_sync.status":        "in_progress",
		"historical_sync.current_chunk": -1,
		"historical_sync.total_chunks":  3,
		"historical_sync.retry_count":   2,
	}
	resp := doAuthed(t, srv, http.MethodPatch, "/api/profile/metadata", auth, plan)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doAuthed(t, srv, http.MethodPost, "/api/health/chunk-complete", auth,
		models.ChunkCompleteRequest{ChunkIndex: 0, TotalChunks: 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doAuthed(t, srv, http.MethodGet, "/api/profile", auth, nil)
	body := readBody(t, resp)
	assert.Equal(t, int64(0), gjson.Get(body, "metadata.historical_sync.retry_count").Int())
}
