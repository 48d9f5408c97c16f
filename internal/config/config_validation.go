// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

// validate checks the merged [StructuredConfig]. Role-specific rules live in
// the client and server views.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HubAddress == "" || cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Sync.Options.Type {
	case models.SyncTypeFull, models.SyncTypeFetch, models.SyncTypeSend:
	default:
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
