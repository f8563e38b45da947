// Package prefs persists UI preferences in a small SQLite database under
// the user's XDG config directory.
package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jdlms/gcz-explorer/internal/visibility"
)

var _ visibility.KV = (*DB)(nil)

// AppDir is the directory name under the config home.
const AppDir = "gcz-explorer"

// FileName is the preferences database file.
const FileName = "prefs.db"

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

// ConfigDir returns $XDG_CONFIG_HOME/gcz-explorer, falling back to
// ~/.config/gcz-explorer.
func ConfigDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppDir), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", AppDir), nil
}

// DefaultPath is the preferences database inside ConfigDir.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// DB is a key-value preferences store.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open preferences: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect preferences: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create preferences table: %w", err)
	}
	return &DB{db: db, path: path}, nil
}

// Exists reports whether a database file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Recreate deletes any database at path and opens a fresh one.
func Recreate(path string) (*DB, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove preferences: %w", err)
	}
	return Open(path)
}

// Path is the database file location.
func (p *DB) Path() string { return p.path }

// Get returns the stored value for key.
func (p *DB) Get(key string) (string, bool, error) {
	var value string
	err := p.db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (p *DB) Set(key, value string) error {
	_, err := p.db.Exec(`
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

// Keys lists the stored keys in order.
func (p *DB) Keys() ([]string, error) {
	rows, err := p.db.Query(`SELECT key FROM preferences ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (p *DB) Close() error {
	return p.db.Close()
}
