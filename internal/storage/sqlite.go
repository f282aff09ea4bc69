package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/database"
)

// SQLiteStorage persists entries in the local_storage table
type SQLiteStorage struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the database at dbPath
func OpenSQLite(dbPath string) (*SQLiteStorage, error) {
	db, err := database.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &SQLiteStorage{db: db}, nil
}

// NewSQLite wraps an already opened database
func NewSQLite(db *sql.DB) (*SQLiteStorage, error) {
	if err := database.EnsureSchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStorage{db: db}, nil
}

// GetItem returns the value stored under key
func (s *SQLiteStorage) GetItem(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM local_storage WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %q: %w", key, err)
	}
	return value, true, nil
}

// SetItem writes value under key, replacing any previous value
func (s *SQLiteStorage) SetItem(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO local_storage (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}

// RemoveItem deletes key; removing a missing key is not an error
func (s *SQLiteStorage) RemoveItem(key string) error {
	if _, err := s.db.Exec("DELETE FROM local_storage WHERE key = ?", key); err != nil {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}

// Close releases the database
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
