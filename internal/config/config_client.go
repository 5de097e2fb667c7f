package config

import (
	"fmt"
	"time"

	"github.com/twinlab/healthsync/models"
)

// ClientAdapter holds network settings used by the companion's transport
// layer.
type ClientAdapter struct {
	// BaseURL is the backend API root used by the client.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientAuth holds backend credentials used when no session is stored.
type ClientAuth struct {
	// Login is the backend account login.
	Login string
	// Password is the backend account password.
	Password string
}

// ClientDB contains local database connection settings for the companion.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientHealth holds settings for the health data provider on the client.
type ClientHealth struct {
	// ExportPath is the JSON export consumed by the file-backed provider.
	ExportPath string
}

// ClientWorkers contains backfill and background-trigger settings.
type ClientWorkers struct {
	// BackgroundInterval is the periodic background trigger interval.
	BackgroundInterval time.Duration
	// TotalChunks is the planned number of backfill chunks.
	TotalChunks int
	// PriorityWindowDays is the priority sync window in days.
	PriorityWindowDays int
}

// ClientConfig is the top-level companion configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport settings.
	Adapter ClientAdapter
	// Auth contains first-launch backend credentials.
	Auth ClientAuth
	// Storage contains client storage settings.
	Storage ClientStorage
	// Health contains health provider settings.
	Health ClientHealth
	// Workers contains backfill and scheduling settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a companion-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for unset worker values,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Auth: ClientAuth{
			Login:    cfg.Auth.Login,
			Password: cfg.Auth.Password,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Health: ClientHealth{
			ExportPath: cfg.Health.ExportPath,
		},
		Workers: ClientWorkers{
			BackgroundInterval: cfg.Workers.BackgroundInterval,
			TotalChunks:        cfg.Workers.TotalChunks,
			PriorityWindowDays: cfg.Workers.PriorityWindowDays,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Workers.BackgroundInterval == 0 {
		cfg.Workers.BackgroundInterval = 15 * time.Minute
	}
	if cfg.Workers.TotalChunks == 0 {
		cfg.Workers.TotalChunks = models.DefaultTotalChunks
	}
	if cfg.Workers.PriorityWindowDays == 0 {
		cfg.Workers.PriorityWindowDays = 7
	}
}
