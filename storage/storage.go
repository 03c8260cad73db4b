// Package storage persists small integer values below the storage
// base path of the core, e.g. to remember the window placement.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// FileName is the name of the database file within the base path
const FileName = "storage.db"

// Store maps storage positions to int32 values
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the store within basePath
func Open(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory %s: %w", basePath, err)
	}

	path := filepath.Join(basePath, FileName)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open storage %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to storage %s: %w", path, err)
	}

	store := &Store{db: db, path: path}

	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate storage: %w", err)
	}

	slog.Debug("Opened storage", slog.String("path", path))

	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS storage_values (
			position INTEGER PRIMARY KEY,
			value INTEGER NOT NULL
		)
	`)

	return err
}

// Path returns the location of the database file
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// SaveStorageValue stores value at the given position, replacing
// any previous value.
func (s *Store) SaveStorageValue(position uint32, value int32) error {
	_, err := s.db.Exec(
		`INSERT INTO storage_values (position, value) VALUES (?, ?)
		 ON CONFLICT(position) DO UPDATE SET value = excluded.value`,
		position, value,
	)

	if err != nil {
		return fmt.Errorf("save storage value at %d: %w", position, err)
	}

	return nil
}

// LoadStorageValue returns the value stored at the given position,
// or 0 if nothing was stored there yet.
func (s *Store) LoadStorageValue(position uint32) (int32, error) {
	var value int32

	err := s.db.QueryRow(
		`SELECT value FROM storage_values WHERE position = ?`,
		position,
	).Scan(&value)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil

	case err != nil:
		return 0, fmt.Errorf("load storage value at %d: %w", position, err)
	}

	return value, nil
}
