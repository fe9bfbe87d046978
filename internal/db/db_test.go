package db

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestManagerOpensMigratesAndSeeds(t *testing.T) {
	ctx := context.Background()
	m := NewManager(filepath.Join(t.TempDir(), "factogo.db"))
	t.Cleanup(func() { m.Close() })

	conn, err := m.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	var version int
	if err := conn.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM db_versions`).Scan(&version); err != nil {
		t.Fatalf("failed to read ledger: %v", err)
	}
	if version != 2 {
		t.Errorf("schema version = %d, want 2", version)
	}

	var templates int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM document_templates`).Scan(&templates); err != nil {
		t.Fatalf("failed to count templates: %v", err)
	}
	if templates != 3 {
		t.Errorf("seeded templates = %d, want 3", templates)
	}
}

func TestManagerReturnsSameHandle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(filepath.Join(t.TempDir(), "factogo.db"))
	t.Cleanup(func() { m.Close() })

	first, err := m.Get(ctx)
	if err != nil {
		t.Fatalf("first Get failed: %v", err)
	}
	second, err := m.Get(ctx)
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if first != second {
		t.Error("Get returned different handles for the same manager")
	}
}

func TestManagerConcurrentGet(t *testing.T) {
	ctx := context.Background()
	m := NewManager(filepath.Join(t.TempDir(), "factogo.db"))
	t.Cleanup(func() { m.Close() })

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = m.Get(ctx)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}

	// Exactly one initialization: seeding ran once, so exactly the three
	// default templates exist.
	conn, _ := m.Get(ctx)
	var templates int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM document_templates`).Scan(&templates); err != nil {
		t.Fatalf("failed to count templates: %v", err)
	}
	if templates != 3 {
		t.Errorf("seeded templates = %d, want 3", templates)
	}
}

func TestManagerRetriesAfterFailedInit(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "factogo.db")

	// A file that is not a SQLite database makes initialization fail.
	if err := os.WriteFile(path, []byte("not a database"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	m := NewManager(path)
	t.Cleanup(func() { m.Close() })

	if _, err := m.Get(ctx); err == nil {
		t.Fatal("Get on corrupt file should fail")
	}

	// The failed attempt must not be cached; replacing the file lets the
	// next call initialize from scratch.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove corrupt file: %v", err)
	}
	if _, err := m.Get(ctx); err != nil {
		t.Fatalf("Get after recovery failed: %v", err)
	}
}

func TestManagerReopensRestoredFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "factogo.db")

	// First lifetime: initialize and capture the file.
	m := NewManager(path)
	if _, err := m.Get(ctx); err != nil {
		t.Fatalf("initial Get failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	snapshot, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to snapshot db file: %v", err)
	}

	// Simulate an external restore between launches: overwrite the file,
	// then open with a fresh manager. Migrations re-run against whatever
	// ledger the restored file carries.
	if err := os.WriteFile(path, snapshot, 0o644); err != nil {
		t.Fatalf("failed to restore db file: %v", err)
	}
	restored := NewManager(path)
	t.Cleanup(func() { restored.Close() })

	conn, err := restored.Get(ctx)
	if err != nil {
		t.Fatalf("Get on restored file failed: %v", err)
	}
	var version int
	if err := conn.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM db_versions`).Scan(&version); err != nil {
		t.Fatalf("failed to read ledger: %v", err)
	}
	if version != 2 {
		t.Errorf("restored schema version = %d, want 2", version)
	}
}
