package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tidwall/gjson"

	"github.com/twinlab/healthsync/internal/config"
	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/models"
)

type httpBackendAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpBackendAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BackendAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpBackendAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [BackendAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpBackendAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [BackendAdapter]. It POSTs the user credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the backend returns a non-2xx status, or the token
// cannot be parsed.
func (h *httpBackendAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := parseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

// GetProfile implements [BackendAdapter]. It GETs /api/profile and extracts
// the historical sync cursor from the profile metadata document. The metadata
// is treated as a free-form JSON object owned by several backend features, so
// the cursor is read tolerantly: an absent or malformed
// metadata.historical_sync node yields a nil HistoricalSync rather than an
// error. Requires a valid bearer token.
func (h *httpBackendAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	resp, err := h.authedRequest(ctx).Get("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	body := resp.Body()
	profile := models.Profile{
		UserID: gjson.GetBytes(body, "user_id").Int(),
		Login:  gjson.GetBytes(body, "login").String(),
	}

	if node := gjson.GetBytes(body, "metadata.historical_sync"); node.IsObject() {
		var state models.HistoricalSyncState
		if err = json.Unmarshal([]byte(node.Raw), &state); err == nil {
			profile.HistoricalSync = &state
		} else {
			h.logger.Warn().
				Err(err).
				Str("func", "httpBackendAdapter.GetProfile").
				Msg("malformed historical_sync metadata, treating as absent")
		}
	}

	return profile, nil
}

// PatchProfileMetadata implements [BackendAdapter]. It PATCHes the dotted-path
// updates to PATCH /api/profile/metadata. Requires a valid bearer token.
func (h *httpBackendAdapter) PatchProfileMetadata(ctx context.Context, patch models.ProfileMetadataPatch) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/api/profile/metadata")
	if err != nil {
		return fmt.Errorf("patch profile metadata request: %w", err)
	}

	return mapHTTPError(resp)
}

// UploadSamples implements [BackendAdapter]. It sets req.Length and POSTs the
// batch to POST /api/health/samples. Requires a valid bearer token.
func (h *httpBackendAdapter) UploadSamples(ctx context.Context, req models.UploadSamplesRequest) error {
	req.Length = len(req.Samples)

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/health/samples")
	if err != nil {
		return fmt.Errorf("upload samples request: %w", err)
	}

	return mapHTTPError(resp)
}

// NotifyChunkComplete implements [BackendAdapter]. It POSTs the chunk
// acknowledgement to POST /api/health/chunk-complete. Returns
// [ErrChunkConflict] (wrapped) on HTTP 409, which the backend sends when
// req.ChunkIndex is not exactly one past its stored cursor. Requires a valid
// bearer token.
func (h *httpBackendAdapter) NotifyChunkComplete(ctx context.Context, req models.ChunkCompleteRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/health/chunk-complete")
	if err != nil {
		return fmt.Errorf("notify chunk complete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
