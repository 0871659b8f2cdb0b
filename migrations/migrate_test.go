package migrations

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

// TestMigrate_DBError drives Migrate against a mock connection with no
// expectations set: goose's first query fails and must surface wrapped.
func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

// TestEmbeddedMigrations verifies that every schema file is actually part of
// the embedded filesystem the runner reads from.
func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}

	assert.Contains(t, names, "00001_create_users.sql")
	assert.Contains(t, names, "00002_create_categories.sql")
	assert.Contains(t, names, "00003_create_credentials.sql")
}
