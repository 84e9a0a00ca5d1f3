package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {
			"token_sign_key": "secret",
			"token_issuer": "invoicer-test",
			"token_duration": "2h",
			"bcrypt_cost": 8
		},
		"storage": {
			"db": {"dsn": "./invoices.db"},
			"files": {"static_dir": "./web"}
		},
		"server": {"http_address": "localhost:3000", "request_timeout": "45s"},
		"session": {"cookie_name": "sid", "ttl": "72h"},
		"workers": {"cleanup_interval": "30m"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "invoicer-test", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 8, cfg.App.BcryptCost)
	assert.Equal(t, "./invoices.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "./web", cfg.Storage.Files.StaticDir)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, 72*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 30*time.Minute, cfg.Workers.CleanupInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// durations may also come as raw nanosecond numbers
	path := writeConfigFile(t, `{"session": {"cookie_name": "sid", "ttl": 3600000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"server": `)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	require.Error(t, d.UnmarshalJSON([]byte(`true`)))
	require.Error(t, d.UnmarshalJSON([]byte(`"ten minutes"`)))
}
