package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view consumed by cmd/devserver.
type ServerConfig struct {
	// HTTPAddress is the TCP address the devserver listens on.
	HTTPAddress string
	// TokenSignKey is the JWT signing secret.
	TokenSignKey string
	// TokenDuration is the issued token lifetime.
	TokenDuration time.Duration
}

// GetServerConfig builds and validates the devserver config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:   cfg.Server.HTTPAddress,
		TokenSignKey:  cfg.Server.TokenSignKey,
		TokenDuration: cfg.Server.TokenDuration,
	}
	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = "localhost:8080"
	}
	if serverCfg.TokenDuration == 0 {
		serverCfg.TokenDuration = 24 * time.Hour
	}

	return serverCfg, serverCfg.validate()
}
