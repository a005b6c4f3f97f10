package cache

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// schema.sql defines the results table holding one payload per fingerprint.
//
//go:embed schema.sql
var schemaSQL string

// Store is a fingerprint-keyed result cache backed by SQLite.
type Store struct {
	*sql.DB
}

// NewStore opens (or creates) the cache database at path and ensures the
// schema exists.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize cache schema: %w", err)
	}

	return &Store{db}, nil
}

// Get returns the payload stored under fingerprint. The second return is
// false on a cache miss.
func (s *Store) Get(fingerprint string) ([]byte, bool, error) {
	var payload []byte
	err := s.QueryRow(
		`SELECT payload FROM results WHERE fingerprint = ?`, fingerprint,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup: %w", err)
	}
	return payload, true, nil
}

// Put stores payload under fingerprint, replacing any previous entry.
func (s *Store) Put(fingerprint string, payload []byte) error {
	_, err := s.Exec(
		`INSERT OR REPLACE INTO results (fingerprint, payload) VALUES (?, ?)`,
		fingerprint, payload,
	)
	if err != nil {
		return fmt.Errorf("cache store: %w", err)
	}
	return nil
}

// Len returns the number of cached entries.
func (s *Store) Len() (int, error) {
	var n int
	if err := s.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("cache count: %w", err)
	}
	return n, nil
}
