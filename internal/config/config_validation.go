// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.WidgetRefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
