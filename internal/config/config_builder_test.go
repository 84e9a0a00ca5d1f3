package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies that building with only the default source
// yields a config that passes validation.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, defaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultBcryptCost, cfg.App.BcryptCost)
	assert.Equal(t, defaultCleanupInterval, cfg.Workers.CleanupInterval)
}

// TestBuild_EarlierSourceWins verifies mergo's merge semantics in the builder:
// a non-zero field supplied by an earlier source is not overridden by a later
// one (defaults are appended last and only fill gaps).
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "./explicit.db"}},
		Session: Session{TTL: time.Hour},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "./explicit.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	// gaps are filled from defaults
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_ValidationFailure verifies that an incomplete merged config is
// rejected by validate.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_PathFromEarlierSource verifies that a JSON path discovered in
// an earlier source is loaded and appended.
func TestWithJSON_PathFromEarlierSource(t *testing.T) {
	path := writeConfigFile(t, `{"server": {"http_address": "localhost:4000"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "localhost:4000", b.configs[1].Server.HTTPAddress)
}

// TestWithJSON_NoPath verifies that withJSON is a no-op when no source set a
// JSON file path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_BadFile verifies that an unreadable JSON file is recorded on
// b.err and surfaces from build.
func TestWithJSON_BadFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	_, err := b.build()
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_TableDriven(t *testing.T) {
	valid := func() *StructuredConfig { return defaultConfig() }

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "valid defaults",
			mutate:  func(cfg *StructuredConfig) {},
			wantErr: nil,
		},
		{
			name:    "empty DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty server address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty cookie name",
			mutate:  func(cfg *StructuredConfig) { cfg.Session.CookieName = "" },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name:    "zero session ttl",
			mutate:  func(cfg *StructuredConfig) { cfg.Session.TTL = 0 },
			wantErr: ErrInvalidSessionConfigs,
		},
		{
			name:    "bcrypt cost out of range",
			mutate:  func(cfg *StructuredConfig) { cfg.App.BcryptCost = 99 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero cleanup interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.CleanupInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
