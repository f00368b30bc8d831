// Package testutil provides shared test helpers for databases and config files.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/monglot/internal/config"
	"github.com/at-ishikawa/monglot/internal/database"
)

// ConfigEnvs are the environment variables the config loader reads.
var ConfigEnvs = []string{
	"PORT", "DB_DRIVER", "DB_PATH", "DB_PASSWORD", "TRANSLATION_PROVIDER",
	"GEMINI_API_KEY", "OPENAI_API_KEY", "TRANSLATION_MODEL", "LOG_LEVEL",
}

// ClearConfigEnv blanks every variable in ConfigEnvs for the duration of the test.
func ClearConfigEnv(t *testing.T) {
	t.Helper()
	for _, env := range ConfigEnvs {
		t.Setenv(env, "")
	}
}

// OpenTestDB opens an in-memory SQLite database with the schema applied. It is closed on cleanup.
func OpenTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.EnsureSchema(context.Background(), db))
	return db
}

// SetupTestConfig writes config.yml in tmpDir using a SQLite file in the same directory.
// extra is appended as raw YAML. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, extra string) string {
	t.Helper()

	content := "database:\n" +
		"  driver: sqlite\n" +
		"  path: " + filepath.Join(tmpDir, "monglot.db") + "\n" +
		"log:\n" +
		"  level: warn\n" +
		extra

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}
