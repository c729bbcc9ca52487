// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS skill_content (
	digest   TEXT PRIMARY KEY,
	skill_id TEXT NOT NULL,
	size     INTEGER NOT NULL,
	body     TEXT NOT NULL
);
`

var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps payloads in a single SQLite file, addressed by sha256 digest.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens or creates the SQLite content database at path.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating content database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open content database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure content database: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create content schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Put inserts payload keyed by its digest. Existing payloads are left untouched.
func (s *SQLiteStore) Put(ctx context.Context, id, payload string) (Handle, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty id", ErrInvalidHandle)
	}

	d := digest.FromString(payload)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO skill_content (digest, skill_id, size, body) VALUES (?, ?, ?, ?)
		 ON CONFLICT(digest) DO NOTHING`,
		d.String(), id, len(payload), payload,
	)
	if err != nil {
		return "", fmt.Errorf("writing content for %s: %w", id, err)
	}
	return Handle(d.String()), nil
}

// Get reads the payload referenced by h.
func (s *SQLiteStore) Get(ctx context.Context, h Handle) (string, error) {
	if _, err := digest.Parse(string(h)); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidHandle, h, err)
	}

	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM skill_content WHERE digest = ?`, string(h)).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, h)
	}
	if err != nil {
		return "", fmt.Errorf("reading content %s: %w", h, err)
	}
	return body, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
