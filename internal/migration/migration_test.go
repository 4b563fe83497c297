package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestReadMigrations(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		fsys := fstest.MapFS{
			"002_second.sql": {Data: []byte("CREATE TABLE b (id TEXT);")},
			"001_first.sql":  {Data: []byte("CREATE TABLE a (id TEXT);")},
		}

		runner := NewRunner(openTestDB(t), fsys)
		migrations, err := runner.ReadMigrations()
		if err != nil {
			t.Fatalf("ReadMigrations() error: %v", err)
		}
		if len(migrations) != 2 {
			t.Fatalf("migration count = %d, want 2", len(migrations))
		}
		if migrations[0].Version != 1 || migrations[0].Name != "first" {
			t.Errorf("first migration = %+v, want version 1 named first", migrations[0])
		}
		if migrations[1].Version != 2 {
			t.Errorf("second migration version = %d, want 2", migrations[1].Version)
		}
	})

	t.Run("invalid filename", func(t *testing.T) {
		fsys := fstest.MapFS{
			"nonsense.sql": {Data: []byte("SELECT 1;")},
		}

		runner := NewRunner(openTestDB(t), fsys)
		if _, err := runner.ReadMigrations(); err == nil {
			t.Error("ReadMigrations() with invalid filename should fail")
		}
	})

	t.Run("duplicate version", func(t *testing.T) {
		fsys := fstest.MapFS{
			"001_first.sql":  {Data: []byte("CREATE TABLE a (id TEXT);")},
			"001_second.sql": {Data: []byte("CREATE TABLE b (id TEXT);")},
		}

		runner := NewRunner(openTestDB(t), fsys)
		if _, err := runner.ReadMigrations(); err == nil {
			t.Error("ReadMigrations() with duplicate versions should fail")
		}
	})

	t.Run("non-sql files ignored", func(t *testing.T) {
		fsys := fstest.MapFS{
			"001_first.sql": {Data: []byte("CREATE TABLE a (id TEXT);")},
			"README.md":     {Data: []byte("notes")},
		}

		runner := NewRunner(openTestDB(t), fsys)
		migrations, err := runner.ReadMigrations()
		if err != nil {
			t.Fatalf("ReadMigrations() error: %v", err)
		}
		if len(migrations) != 1 {
			t.Errorf("migration count = %d, want 1", len(migrations))
		}
	})
}

func TestApply(t *testing.T) {
	fsys := fstest.MapFS{
		"001_first.sql":  {Data: []byte("CREATE TABLE a (id TEXT);")},
		"002_second.sql": {Data: []byte("CREATE TABLE b (id TEXT);")},
	}

	db := openTestDB(t)
	runner := NewRunner(db, fsys)

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Both tables exist
	for _, table := range []string{"a", "b"} {
		var count int
		err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil || count != 1 {
			t.Errorf("table %s not created (count=%d, err=%v)", table, count, err)
		}
	}

	// A second run is a no-op
	applied, err = runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply() second run error: %v", err)
	}
	if applied != 0 {
		t.Errorf("second run applied = %d, want 0", applied)
	}
}

func TestApplyRollsBackFailedMigration(t *testing.T) {
	fsys := fstest.MapFS{
		"001_first.sql": {Data: []byte("CREATE TABLE a (id TEXT);")},
		"002_bad.sql":   {Data: []byte("THIS IS NOT SQL;")},
	}

	db := openTestDB(t)
	runner := NewRunner(db, fsys)

	if _, err := runner.Apply(nil); err == nil {
		t.Fatal("Apply() with a broken migration should fail")
	}

	// Version stays at the last successful migration
	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() error: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
}

func TestValidateVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"001_first.sql": {Data: []byte("CREATE TABLE a (id TEXT);")},
	}

	db := openTestDB(t)
	runner := NewRunner(db, fsys)

	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() error = %v, want nil", err)
	}

	// Simulate a database written by a newer build
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() with future schema version should fail")
	}
}
