package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://api.example.com"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "healthsync.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, "healthsync.db", cfg.Storage.DB.DSN)
}

func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://first.example.com"}},
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://second.example.com"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo.Merge keeps already-set destination fields, so the earlier
	// (higher-priority) source wins.
	assert.Equal(t, "https://first.example.com", cfg.Adapter.BaseURL)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{
			"base_url":        "https://json.example.com",
			"request_timeout": "20s",
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "https://json.example.com", b.configs[1].Adapter.BaseURL)
	assert.Equal(t, 20*time.Second, b.configs[1].Adapter.RequestTimeout)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	require.Error(t, b.err)
}

// ── validation views ──────────────────────────────────────────────────────────

func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{BaseURL: "https://api.example.com", RequestTimeout: 15 * time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "healthsync.db"}},
			Workers: ClientWorkers{BackgroundInterval: 15 * time.Minute, TotalChunks: 13, PriorityWindowDays: 7},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().validate())
	})

	t.Run("empty dsn", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DB.DSN = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("in-memory dsn rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DB.DSN = ":memory:"
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing base url", func(t *testing.T) {
		cfg := valid()
		cfg.Adapter.BaseURL = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})

	t.Run("zero chunks", func(t *testing.T) {
		cfg := valid()
		cfg.Workers.TotalChunks = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
	})
}

func TestServerConfigValidate(t *testing.T) {
	cfg := &ServerConfig{HTTPAddress: "localhost:8080", TokenSignKey: "secret"}
	assert.NoError(t, cfg.validate())

	cfg.TokenSignKey = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
