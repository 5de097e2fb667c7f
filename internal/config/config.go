// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for healthsync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Adapter holds settings for the outbound backend API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Auth holds backend credentials used when no session is stored locally.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the local preference database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Health holds settings for the on-device health data provider.
	Health Health `envPrefix:"HEALTH_"`

	// Workers holds backfill and background-trigger settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds settings consumed only by the development backend
	// (cmd/devserver).
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings for the backend API client.
type Adapter struct {
	// BaseURL is the backend API root, e.g. "https://api.twinlab.io".
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "15s"). Kept short because background invocations run under an
	// OS time budget.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds backend login credentials for the companion. Used only on
// first launch; afterwards the stored session token is reused.
type Auth struct {
	// Login is the backend account login.
	// Env: AUTH_LOGIN
	Login string `env:"LOGIN"`

	// Password is the backend account password.
	// Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local preference database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite preference store.
type DB struct {
	// DSN is the SQLite file path used for durable preferences
	// (e.g. "healthsync.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Health holds settings for the health data provider.
type Health struct {
	// ExportPath is the path to a JSON health-data export consumed by the
	// file-backed provider. The platform SDK provider supplies its own
	// source and ignores this value.
	// Env: HEALTH_EXPORT_PATH
	ExportPath string `env:"EXPORT_PATH"`
}

// Workers holds backfill planning and scheduling settings.
type Workers struct {
	// BackgroundInterval is the periodic background trigger interval.
	// Defaults to 15 minutes when unset.
	// Env: WORKERS_BACKGROUND_INTERVAL
	BackgroundInterval time.Duration `env:"BACKGROUND_INTERVAL"`

	// TotalChunks is the number of 30-day chunks planned for a historical
	// backfill. Defaults to 13 when unset.
	// Env: WORKERS_TOTAL_CHUNKS
	TotalChunks int `env:"TOTAL_CHUNKS"`

	// PriorityWindowDays is how many recent days the priority sync covers.
	// Defaults to 7 when unset.
	// Env: WORKERS_PRIORITY_WINDOW_DAYS
	PriorityWindowDays int `env:"PRIORITY_WINDOW_DAYS"`
}

// Server holds settings for the development backend server.
type Server struct {
	// HTTPAddress is the TCP address the devserver listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey is the secret used to sign and verify JWT tokens issued
	// by the devserver.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is how long an issued JWT remains valid (e.g. "24h").
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}
