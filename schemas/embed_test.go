package schemas

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations(t *testing.T) {
	tests := []struct {
		name string
		dir  string
	}{
		{name: "mysql", dir: "migrations/mysql"},
		{name: "sqlite3", dir: "migrations/sqlite3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			up, err := fs.Glob(Migrations, tt.dir+"/*.up.sql")
			require.NoError(t, err)
			down, err := fs.Glob(Migrations, tt.dir+"/*.down.sql")
			require.NoError(t, err)
			assert.NotEmpty(t, up)
			assert.Len(t, down, len(up))
		})
	}
}

// Word lookups compare text with "=", which must be case and accent sensitive.
func TestMigrations_MySQLWordTextIsBinaryCollated(t *testing.T) {
	content, err := fs.ReadFile(Migrations, "migrations/mysql/000001_create_tables.up.sql")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`(?m)^\s*text VARCHAR\(\d+\) COLLATE utf8mb4_bin NOT NULL,$`), string(content))
}
