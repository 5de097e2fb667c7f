package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so a config file can express timeouts as "15s".
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Health struct {
		ExportPath string `json:"export_path"`
	} `json:"health,omitempty"`

	Workers struct {
		BackgroundInterval Duration `json:"background_interval"`
		TotalChunks        int      `json:"total_chunks"`
		PriorityWindowDays int      `json:"priority_window_days"`
	} `json:"workers,omitempty"`

	Server struct {
		HTTPAddress   string   `json:"http_address"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Health: Health{
			ExportPath: jsonCfg.Health.ExportPath,
		},
		Workers: Workers{
			BackgroundInterval: time.Duration(jsonCfg.Workers.BackgroundInterval),
			TotalChunks:        jsonCfg.Workers.TotalChunks,
			PriorityWindowDays: jsonCfg.Workers.PriorityWindowDays,
		},
		Server: Server{
			HTTPAddress:   jsonCfg.Server.HTTPAddress,
			TokenSignKey:  jsonCfg.Server.TokenSignKey,
			TokenDuration: time.Duration(jsonCfg.Server.TokenDuration),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
