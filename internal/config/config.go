// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the invoicer
// application. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and the
	// bcrypt cost used when hashing passwords.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend and the
	// static asset directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Session holds cookie and lifetime settings for browser sessions.
	Session Session `envPrefix:"SESSION_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control credential
// hashing and API token lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign and verify API bearer
	// tokens. Must be kept confidential. When left empty the server falls
	// back to an insecure development default and logs a warning.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued bearer token.
	// Tokens whose issuer does not match this value are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a bearer token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor applied when hashing passwords
	// at signup. Higher values slow down brute-force attacks and logins
	// alike.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// Storage groups the configuration for the persistence backend used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds static asset serving settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects and configures the backend. A value starting with
	// "postgres://" or "postgresql://" opens a PostgreSQL connection via
	// pgx; anything else is treated as the path of a SQLite database file
	// (e.g. "./invoicer.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for static asset serving.
type Files struct {
	// StaticDir is the directory whose contents are served at "/"
	// (the web client's HTML, CSS and JS). Static serving is disabled
	// when empty.
	// Env: STORAGE_FILES_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds settings of the cookie-based browser session mechanism.
type Session struct {
	// CookieName is the name of the session cookie sent to browsers.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// TTL is the fixed lifetime of a session from the moment of login
	// (e.g. "168h" for one week). Expired sessions are rejected and later
	// purged by the cleanup worker.
	// Env: SESSION_TTL
	TTL time.Duration `env:"TTL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CleanupInterval is how often the session cleanup worker purges
	// expired session rows from the store.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields no source provided. Returns a fully
// populated *StructuredConfig or an error if any source fails to load or
// the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
