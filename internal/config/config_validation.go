// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Session.CookieName == "" || cfg.Session.TTL <= 0 {
		return ErrInvalidSessionConfigs
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// defaultConfig returns the built-in fallback values merged beneath every
// explicit configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "invoicer",
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Session: Session{
			CookieName: defaultSessionCookieName,
			TTL:        defaultSessionTTL,
		},
		Workers: Workers{
			CleanupInterval: defaultCleanupInterval,
		},
	}
}
