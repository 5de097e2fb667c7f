// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

// Package adapter provides transport-layer abstractions for communicating with
// the Twinlab health backend.
//
// The primary abstraction is [BackendAdapter], which decouples the sync
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBackendAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrChunkConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/twinlab/healthsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the health
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type BackendAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. Safe for concurrent use.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates the user with the backend. On success it stores
	// the returned bearer token via SetToken and returns the token together
	// with the user id parsed from its "sub" claim. Returns an error if the
	// request fails or the backend responds with a non-2xx status.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// GetProfile fetches the authenticated user's profile, including the
	// historical sync cursor stored in the profile metadata document. The
	// returned Profile.HistoricalSync is nil when the metadata holds no
	// cursor yet, which callers treat as a backfill that has not started.
	GetProfile(ctx context.Context) (models.Profile, error)

	// PatchProfileMetadata applies a set of dotted-path updates to the
	// profile metadata document. Used to plan the backfill cursor and to
	// bump its retry counter.
	PatchProfileMetadata(ctx context.Context, patch models.ProfileMetadataPatch) error

	// UploadSamples sends one batch of health samples to the backend.
	// Length is set from the payload automatically.
	UploadSamples(ctx context.Context, req models.UploadSamplesRequest) error

	// NotifyChunkComplete tells the backend that a backfill chunk's samples
	// are durable and the cursor may advance. Returns [ErrChunkConflict]
	// (wrapped) when the backend rejects the chunk index as out of order.
	NotifyChunkComplete(ctx context.Context, req models.ChunkCompleteRequest) error
}
