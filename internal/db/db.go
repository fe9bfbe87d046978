// Package db owns the embedded SQLite database: the process-wide connection,
// the versioned schema migrations, and the default-template seeding.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// Manager owns the single database handle for the process lifetime.
// Repositories borrow the handle through Get and never open their own.
//
// Get is single-flight: the first caller opens the file, runs migrations and
// seeds default templates while concurrent callers block on the same
// initialization. On failure nothing is cached, so a later call retries from
// scratch. A successfully opened handle is kept until Close.
type Manager struct {
	path string

	mu   sync.Mutex
	conn *sql.DB
}

// NewManager creates a manager for the database file at path. The file is
// not opened until the first Get.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Path returns the database file path.
func (m *Manager) Path() string {
	return m.path
}

// Get returns the shared database handle, opening and migrating the
// database on first use.
func (m *Manager) Get(ctx context.Context) (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		return m.conn, nil
	}

	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", m.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := m.initialize(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	m.conn = conn
	return m.conn, nil
}

// initialize brings a freshly opened connection to a usable state. The
// handle is only cached once every step here has succeeded.
func (m *Manager) initialize(ctx context.Context, conn *sql.DB) error {
	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// A migration failure must prevent the database from being used: a
	// schema mismatch corrupts every downstream assumption.
	if err := Migrate(conn); err != nil {
		return err
	}

	if err := SeedDefaultTemplates(conn); err != nil {
		return fmt.Errorf("failed to seed default templates: %w", err)
	}

	return nil
}

// Close closes the handle if it was opened. A closed manager can be reused;
// the next Get reinitializes. Intended for tests and shutdown.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn == nil {
		return nil
	}
	err := m.conn.Close()
	m.conn = nil
	return err
}

// DefaultPath returns the default database location, ~/.factogo/factogo.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".factogo", "factogo.db"), nil
}
