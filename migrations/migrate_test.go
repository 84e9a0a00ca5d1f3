package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "invoicer.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_FreshDatabase(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, DialectSQLite))

	for _, table := range []string{"users", "invoices", "invoice_items", "sessions"} {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, DialectSQLite))

	_, err := db.Exec(
		`INSERT INTO users (email, password_hash) VALUES (?, ?)`,
		"alice@example.com", "digest",
	)
	require.NoError(t, err)

	// a second run must be a no-op and must not touch existing rows
	require.NoError(t, Migrate(db, DialectSQLite))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 1, count)
}

// TestMigrate_AdoptsLegacyDatabase covers a database created before version
// tracking existed: a bare users table without the profile columns. Migrate
// must leave its rows intact and add the columns, which read back as NULL.
func TestMigrate_AdoptsLegacyDatabase(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO users (email, password_hash) VALUES (?, ?)`,
		"legacy@example.com", "digest",
	)
	require.NoError(t, err)

	require.NoError(t, Migrate(db, DialectSQLite))

	var companyName, companyAddress, logoURL sql.NullString
	err = db.QueryRow(
		`SELECT company_name, company_address, logo_url FROM users WHERE email = ?`,
		"legacy@example.com",
	).Scan(&companyName, &companyAddress, &logoURL)
	require.NoError(t, err)

	assert.False(t, companyName.Valid)
	assert.False(t, companyAddress.Valid)
	assert.False(t, logoURL.Valid)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db := openTestDB(t)
	require.Error(t, Migrate(db, Dialect("oracle")))
}
