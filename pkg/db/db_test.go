package db

import (
	"database/sql"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"statusdrafter/pkg/models"
	"statusdrafter/pkg/repository/draft"
	"testing"
)

func newTestLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "db-test",
		Level: hclog.LevelFromString("DEBUG"),
	})
}

func newTempDbPath(t *testing.T) string {
	tempFile, err := os.CreateTemp("", "test-db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_ = tempFile.Close()
	t.Cleanup(func() { os.Remove(tempFile.Name()) })
	return tempFile.Name()
}

func TestOpenConnection(t *testing.T) {
	sqliteDb := NewSqliteDbConnection(newTestLogger(), newTempDbPath(t))
	defer sqliteDb.Close()

	conn, err := sqliteDb.OpenConnectionToExistingDB()
	require.NoError(t, err)
	assert.NotNil(t, conn)
	assert.Same(t, conn, sqliteDb.GetOpenConnection())

	again, err := sqliteDb.OpenConnectionToExistingDB()
	require.NoError(t, err)
	assert.Same(t, conn, again)

	var foreignKeys int
	require.NoError(t, conn.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys))
	assert.Equal(t, 1, foreignKeys)
}

func TestOpenConnection_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "drafts.db")

	sqliteDb := NewSqliteDbConnection(newTestLogger(), path)
	defer sqliteDb.Close()

	version, err := sqliteDb.RunMigration()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)
	assert.FileExists(t, path)
}

func TestRunMigration_Idempotent(t *testing.T) {
	sqliteDb := NewSqliteDbConnection(newTestLogger(), newTempDbPath(t))
	defer sqliteDb.Close()

	version, err := sqliteDb.RunMigration()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)

	version, err = sqliteDb.RunMigration()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)

	current, err := sqliteDb.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), current)

	conn := sqliteDb.GetOpenConnection()
	var applied int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	assert.Equal(t, len(migrations), applied)

	for _, index := range []string{"idx_roles_project", "idx_drafts_created_at"} {
		var count int
		require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = ?", index).Scan(&count))
		assert.Equal(t, 1, count, index)
	}
}

func TestRunMigration_UpgradesLegacyDraftsTable(t *testing.T) {
	path := newTempDbPath(t)

	legacy, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = legacy.Exec(`CREATE TABLE drafts (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        type TEXT,
        content TEXT,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    )`)
	require.NoError(t, err)
	_, err = legacy.Exec("INSERT INTO drafts (type, content, created_at) VALUES ('daily', 'old draft', '2024-01-02 10:00:00')")
	require.NoError(t, err)
	_, err = legacy.Exec("INSERT INTO drafts (type, content, created_at) VALUES ('daily', NULL, '2024-01-01 10:00:00')")
	require.NoError(t, err)
	require.NoError(t, legacy.Close())

	sqliteDb := NewSqliteDbConnection(newTestLogger(), path)
	defer sqliteDb.Close()

	version, err := sqliteDb.RunMigration()
	require.NoError(t, err)
	assert.Equal(t, LatestVersion(), version)

	conn := sqliteDb.GetOpenConnection()
	var content string
	var projectID, roleID sql.NullInt64
	err = conn.QueryRow("SELECT content, project_id, role_id FROM drafts WHERE id = 1").Scan(&content, &projectID, &roleID)
	require.NoError(t, err)
	assert.Equal(t, "old draft", content)
	assert.False(t, projectID.Valid)
	assert.False(t, roleID.Valid)

	drafts, listErr := draft.NewDraftRepo(newTestLogger(), conn).List(50)
	require.Nil(t, listErr)
	require.Len(t, drafts, 2)
	assert.Equal(t, "old draft", drafts[0].Content)
	assert.Equal(t, models.DailyDraft, drafts[1].Type)
	assert.Equal(t, "", drafts[1].Content)

	_, err = conn.Exec("INSERT INTO drafts (type, content, project_id, role_id) VALUES ('weekly', 'new draft', 1, 2)")
	assert.NoError(t, err)
}

func TestRunMigration_EnforcesCascadeAndCheck(t *testing.T) {
	sqliteDb := NewSqliteDbConnection(newTestLogger(), newTempDbPath(t))
	defer sqliteDb.Close()

	_, err := sqliteDb.RunMigration()
	require.NoError(t, err)
	conn := sqliteDb.GetOpenConnection()

	_, err = conn.Exec("INSERT INTO projects (name) VALUES ('Alpha')")
	require.NoError(t, err)
	_, err = conn.Exec("INSERT INTO roles (project_id, name) VALUES (1, 'Dev')")
	require.NoError(t, err)

	_, err = conn.Exec("INSERT INTO roles (project_id, name) VALUES (99, 'Ghost')")
	assert.Error(t, err)

	_, err = conn.Exec("INSERT INTO drafts (type, content) VALUES ('monthly', 'x')")
	assert.Error(t, err)

	_, err = conn.Exec("DELETE FROM projects WHERE id = 1")
	require.NoError(t, err)
	var roles int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM roles").Scan(&roles))
	assert.Equal(t, 0, roles)
}
