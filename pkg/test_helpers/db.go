package test_helpers

import (
	"database/sql"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"os"
	"statusdrafter/pkg/db"
	"statusdrafter/pkg/utils"
	"testing"
)

func NewTestLogger(name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: hclog.LevelFromString("DEBUG"),
	})
}

// NewMigratedTestDb opens a fresh sqlite file with the full schema, removed
// when the test ends
func NewMigratedTestDb(t *testing.T) *sql.DB {
	tempFile, err := os.CreateTemp("", "test-db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_ = tempFile.Close()

	sqliteDb := db.NewSqliteDbConnection(NewTestLogger("test-db"), tempFile.Name())
	if _, err := sqliteDb.RunMigration(); err != nil {
		t.Fatalf("Failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		_ = sqliteDb.Close()
		_ = utils.RemoveFileIfExists(afero.NewOsFs(), tempFile.Name())
	})

	return sqliteDb.GetOpenConnection()
}
