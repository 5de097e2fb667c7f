// Package devserver is a development backend implementing the API contract
// the companion client speaks: JWT login, profile metadata with dotted-path
// patches, sample upload, and the chunk-complete endpoint that enforces the
// current+1 cursor rule the backfill relies on.
//
// State lives in memory; the server exists so the client can be exercised
// end to end without the production backend.
package devserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"

	"github.com/twinlab/healthsync/internal/config"
	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/models"
)

type ctxKey string

// userIDCtxKey carries the authenticated user id through the request context.
const userIDCtxKey ctxKey = "user_id"

// Handler serves the dev backend API.
type Handler struct {
	store *memoryStore

	tokenSignKey  string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewHandler constructs the dev server handler from the server configuration.
func NewHandler(cfg config.ServerConfig, logger *logger.Logger) *Handler {
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = 24 * time.Hour
	}
	return &Handler{
		store:         newMemoryStore(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenDuration: duration,
		logger:        logger,
	}
}

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/profile", h.getProfile)
		r.Patch("/api/profile/metadata", h.patchMetadata)
		r.Post("/api/health/samples", h.uploadSamples)
		r.Post("/api/health/chunk-complete", h.chunkComplete)
	})

	return router
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if user.Login == "" {
		http.Error(w, "login is required", http.StatusBadRequest)
		return
	}

	userID, err := h.store.authenticate(user.Login, user.Password)
	if err != nil {
		log.Err(err).Msg("login failed")
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
		return
	}

	token, err := h.issueToken(userID)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("user_id", userID).Str("login", user.Login).Msg("user logged in")
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := userIDFromContext(r.Context())

	login, metadata, err := h.store.profile(userID)
	if err != nil {
		log.Err(err).Msg("profile lookup failed")
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"user_id":  userID,
		"login":    login,
		"metadata": metadata,
	})
}

func (h *Handler) patchMetadata(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := userIDFromContext(r.Context())

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.store.patchMetadata(userID, patch); err != nil {
		log.Err(err).Msg("metadata patch failed")
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) uploadSamples(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := userIDFromContext(r.Context())

	var req models.UploadSamplesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.Length != len(req.Samples) {
		http.Error(w, "length mismatch", http.StatusBadRequest)
		return
	}

	if err := h.store.recordSamples(userID, len(req.Samples)); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	log.Info().
		Int("samples", len(req.Samples)).
		Int("chunk_index", req.ChunkIndex).
		Msg("samples accepted")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) chunkComplete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	userID := userIDFromContext(r.Context())

	var req models.ChunkCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.store.chunkComplete(userID, req.ChunkIndex, req.TotalChunks, time.Now())
	switch {
	case errors.Is(err, ErrChunkConflict):
		log.Warn().Int("chunk_index", req.ChunkIndex).Msg("chunk acknowledgment out of order")
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	log.Info().
		Int("chunk_index", req.ChunkIndex).
		Int("total_chunks", req.TotalChunks).
		Msg("chunk acknowledged")
	w.WriteHeader(http.StatusOK)
}

// auth enforces JWT bearer authentication and stores the user id in the
// request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[1] == "" {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		userID, err := h.parseToken(parts[1])
		if err != nil {
			log.Err(err).Msg("token rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) issueToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.tokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.tokenSignKey))
}

func (h *Handler) parseToken(tokenString string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(h.tokenSignKey), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, errors.New("invalid token claims")
	}
	return strconv.ParseInt(claims.Subject, 10, 64)
}

func userIDFromContext(ctx context.Context) int64 {
	userID, _ := ctx.Value(userIDCtxKey).(int64)
	return userID
}
