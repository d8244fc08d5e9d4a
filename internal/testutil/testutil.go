// Package testutil provides shared test helpers for config files and databases.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/langdrill/internal/config"
	"github.com/at-ishikawa/langdrill/internal/database"
)

// TestUserID is the user configured by SetupTestConfig.
const TestUserID = "test-user"

// TestToken is the bearer token of TestUserID in SetupTestConfig.
const TestToken = "test-token"

// SetupTestConfig creates a config file that points to a SQLite database in tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`database:
  driver: sqlite3
  path: %s
user:
  id: %s
server:
  auth:
    tokens:
      %s: %s
practice:
  default_language: fr
  lookup:
    max_retry_attempts: 1
    initial_backoff: 1ms
`,
		filepath.Join(tmpDir, "langdrill.db"),
		TestUserID,
		TestToken, TestUserID,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// NewTestDB opens a migrated SQLite database in a temporary directory.
// The database is closed when the test ends.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "langdrill.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, database.Migrate(db))
	return db
}

// WriteFile writes content to name in dir and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
