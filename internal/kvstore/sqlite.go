package kvstore

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/syp-convert/internal/parsererror"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteStore keeps keys in a single table of a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the SQLite database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, sqliteErr("open", "", errors.New("path is required"))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, sqliteErr("open", "", err)
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, sqliteErr("open", "", err)
	}
	// One connection keeps the single-writer model of the store.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, sqliteErr("ping", "", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, sqliteErr("migrate", "", err)
	}

	return &SQLiteStore{db: db, path: filepath.Clean(path)}, nil
}

// Path returns the location of the database file.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Get(key string) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, parsererror.ErrStorageClosed
	}

	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, sqliteErr("get", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	if s == nil || s.db == nil {
		return parsererror.ErrStorageClosed
	}

	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return sqliteErr("set", key, err)
	}
	return nil
}

// Close closes the database. Further calls fail with ErrStorageClosed.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func sqliteErr(op, key string, err error) error {
	return &parsererror.StorageError{Backend: string(BackendSQLite), Op: op, Key: key, Err: err}
}
