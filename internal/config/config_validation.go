// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Twinlab

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Cross-source invariants are enforced on the derived views
// ([ClientConfig], [ServerConfig]); the merged structured config itself has
// none yet.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.BackgroundInterval <= 0 || cfg.Workers.TotalChunks <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.TokenSignKey == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
