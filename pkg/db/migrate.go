package db

import (
	"database/sql"
	"fmt"
	"github.com/hashicorp/go-hclog"
	"statusdrafter/pkg/constants"
)

type migration struct {
	version int
	name    string
	up      func(tx *sql.Tx) error
}

var migrations = []migration{
	{version: 1, name: "create tables", up: createTables},
	{version: 2, name: "add draft project and role columns", up: addDraftReferenceColumns},
	{version: 3, name: "add indexes", up: addIndexes},
}

func createTables(tx *sql.Tx) error {
	_, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS projects
(
    id   INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS roles
(
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id INTEGER NOT NULL,
    name       TEXT    NOT NULL,
    FOREIGN KEY (project_id)
        REFERENCES projects (id)
        ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS drafts
(
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    type       TEXT     NOT NULL CHECK (type IN ('daily', 'weekly')),
    content    TEXT     NOT NULL,
    project_id INTEGER,
    role_id    INTEGER,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`)
	return err
}

// addDraftReferenceColumns upgrades drafts tables created before drafts could
// be tagged with a project and role
func addDraftReferenceColumns(tx *sql.Tx) error {
	for _, column := range []string{constants.DraftsProjectIdColumn, constants.DraftsRoleIdColumn} {
		exists, err := columnExists(tx, constants.DraftsTableName, column)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		_, err = tx.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s INTEGER", constants.DraftsTableName, column))
		if err != nil {
			return err
		}
	}
	return nil
}

func addIndexes(tx *sql.Tx) error {
	_, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_roles_project ON roles (project_id);
CREATE INDEX IF NOT EXISTS idx_drafts_created_at ON drafts (created_at);
`)
	return err
}

func columnExists(tx *sql.Tx, table string, column string) (bool, error) {
	var count int
	err := tx.QueryRow(
		"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?",
		table, column,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func ensureMigrationsTable(conn *sql.DB) error {
	_, err := conn.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s
(
    version    INTEGER PRIMARY KEY,
    applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`, constants.SchemaMigrationsTable))
	return err
}

// CurrentVersion returns the highest applied migration, 0 on a fresh database
func CurrentVersion(conn *sql.DB) (int, error) {
	if err := ensureMigrationsTable(conn); err != nil {
		return 0, err
	}

	var version sql.NullInt64
	err := conn.QueryRow(fmt.Sprintf("SELECT MAX(version) FROM %s", constants.SchemaMigrationsTable)).Scan(&version)
	if err != nil {
		return 0, err
	}
	return int(version.Int64), nil
}

// Migrate applies every pending migration, each in its own transaction
// together with its version row. Running it again is a no-op.
func Migrate(logger hclog.Logger, conn *sql.DB) (int, error) {
	current, err := CurrentVersion(conn)
	if err != nil {
		return 0, err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := conn.Begin()
		if err != nil {
			return current, err
		}

		if err := m.up(tx); err != nil {
			_ = tx.Rollback()
			logger.Error("migration failed", "version", m.version, "name", m.name, "error", err.Error())
			return current, fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}

		_, err = tx.Exec(fmt.Sprintf("INSERT INTO %s (version) VALUES (?)", constants.SchemaMigrationsTable), m.version)
		if err != nil {
			_ = tx.Rollback()
			return current, err
		}

		if err := tx.Commit(); err != nil {
			return current, err
		}

		current = m.version
		logger.Info("applied migration", "version", m.version, "name", m.name)
	}

	return current, nil
}

func LatestVersion() int {
	return migrations[len(migrations)-1].version
}
