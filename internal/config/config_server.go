// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration of the reference sync server.
type ServerConfig struct {
	// Server holds the listen address and timeouts.
	Server Server
	// App holds the token parameters.
	App App
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{Server: cfg.Server, App: cfg.App}
	if serverCfg.Server.RequestTimeout <= 0 {
		serverCfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if serverCfg.Server.FetchBatchSize <= 0 {
		serverCfg.Server.FetchBatchSize = DefaultBatchSize
	}
	if serverCfg.App.TokenDuration <= 0 {
		serverCfg.App.TokenDuration = time.Hour
	}

	return serverCfg, serverCfg.validate()
}
