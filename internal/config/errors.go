package config

import (
	"errors"
	"time"
)

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, an empty cookie name or non-positive TTL).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a bcrypt cost outside the supported range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive cleanup interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// Built-in defaults applied beneath every explicit configuration source.
const (
	defaultDSN               = "./invoicer.db"
	defaultHTTPAddress       = "localhost:3000"
	defaultRequestTimeout    = 60 * time.Second
	defaultSessionCookieName = "invoicer_session"
	defaultSessionTTL        = 7 * 24 * time.Hour
	defaultTokenDuration     = 24 * time.Hour
	defaultBcryptCost        = 10
	defaultCleanupInterval   = time.Hour
)
