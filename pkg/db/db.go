package db

import (
	"database/sql"
	"fmt"
	"github.com/hashicorp/go-hclog"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/afero"
	"statusdrafter/pkg/utils"
	"sync"
)

type sqlLiteDb struct {
	dbFilePath string
	conn       *sql.DB
	logger     hclog.Logger
	rwMux      sync.RWMutex
}

type DataStore interface {
	OpenConnectionToExistingDB() (*sql.DB, error)
	GetOpenConnection() *sql.DB
	RunMigration() (int, error)
	CurrentVersion() (int, error)
	Close() error
}

func NewSqliteDbConnection(logger hclog.Logger, dbFilePath string) DataStore {
	return &sqlLiteDb{
		dbFilePath: dbFilePath,
		logger:     logger.Named("sqlite-db"),
	}
}

// OpenConnectionToExistingDB opens the database file, creating it and its
// directory when missing.
// The pool is capped at one connection so writes are serialized and the
// foreign key pragma applies to every statement.
func (db *sqlLiteDb) OpenConnectionToExistingDB() (*sql.DB, error) {
	db.rwMux.Lock()
	defer db.rwMux.Unlock()

	if db.conn != nil {
		return db.conn, nil
	}

	if _, _, err := utils.MakeDirIfNotExist(afero.NewOsFs(), db.dbFilePath); err != nil {
		db.logger.Error("failed to create db directory", "path", db.dbFilePath, "error", err.Error())
		return nil, err
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_foreign_keys=1", db.dbFilePath))
	if err != nil {
		db.logger.Error("failed to open db", "path", db.dbFilePath, "error", err.Error())
		return nil, err
	}
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		db.logger.Error("failed to reach db", "path", db.dbFilePath, "error", err.Error())
		_ = conn.Close()
		return nil, err
	}

	db.conn = conn
	return conn, nil
}

func (db *sqlLiteDb) GetOpenConnection() *sql.DB {
	db.rwMux.RLock()
	defer db.rwMux.RUnlock()

	return db.conn
}

// RunMigration brings the schema up to date and returns the resulting version
func (db *sqlLiteDb) RunMigration() (int, error) {
	conn, err := db.OpenConnectionToExistingDB()
	if err != nil {
		return 0, err
	}

	return Migrate(db.logger, conn)
}

func (db *sqlLiteDb) CurrentVersion() (int, error) {
	conn, err := db.OpenConnectionToExistingDB()
	if err != nil {
		return 0, err
	}

	return CurrentVersion(conn)
}

func (db *sqlLiteDb) Close() error {
	db.rwMux.Lock()
	defer db.rwMux.Unlock()

	if db.conn == nil {
		return nil
	}
	err := db.conn.Close()
	db.conn = nil
	return err
}
