// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; do not hardcode CREATE TABLE statements in test
// files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/factogo/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedStore inserts a test store and returns its id.
func seedStore(t *testing.T, database *sql.DB, name, status string) int64 {
	t.Helper()
	if name == "" {
		name = "Test Store"
	}
	if status == "" {
		status = "active"
	}
	res, err := database.Exec(
		"INSERT INTO stores (ownerUserId, name, status) VALUES (1, ?, ?)", name, status)
	if err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedQuote inserts a test quote for a store and returns its row id.
func seedQuote(t *testing.T, database *sql.DB, storeID int64, number, status string) int64 {
	t.Helper()
	res, err := database.Exec(
		`INSERT INTO quotes (document_number, clientName, date, items, total, storeId, status)
		 VALUES (?, 'Quote Client', '2025-03-01', '[]', 100, ?, ?)`,
		number, storeID, sql.NullString{String: status, Valid: status != ""})
	if err != nil {
		t.Fatalf("failed to seed quote: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedInvoice inserts a test invoice row directly and returns its row id.
func seedInvoice(t *testing.T, database *sql.DB, storeID int64, number string) int64 {
	t.Helper()
	res, err := database.Exec(
		`INSERT INTO invoices (document_number, clientName, date, items, total, storeId)
		 VALUES (?, 'Invoice Client', '2025-03-01', '[]', 100, ?)`,
		number, storeID)
	if err != nil {
		t.Fatalf("failed to seed invoice: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// countRows counts rows in a table.
func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return count
}
