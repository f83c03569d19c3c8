package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	for _, table := range []string{"search_entries", "search_queries"} {
		var count int
		err := d.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
	if d.Path() != ":memory:" {
		t.Errorf("Path() = %q", d.Path())
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "summa.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	if _, err := d.Exec(`INSERT INTO search_entries (token, kind, title, content) VALUES (?, ?, ?, ?)`,
		"PtFS", "part", "First Part", "On sacred doctrine"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	d.Close()

	// Reopening keeps the data and re-runs migrations harmlessly.
	d, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer d.Close()

	var token string
	if err := d.QueryRow(`SELECT token FROM search_entries WHERE search_entries MATCH 'doctrine'`).Scan(&token); err != nil {
		t.Fatalf("fts query: %v", err)
	}
	if token != "PtFS" {
		t.Errorf("token = %q, want PtFS", token)
	}
}
