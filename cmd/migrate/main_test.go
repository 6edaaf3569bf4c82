package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDescriptionFromFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-10-19-002-create-kv-store.sql", "create kv store"},
		{"2026-10-19-001-create-migrations.sql", "create migrations"},
		{"no-prefix.sql", "no prefix"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := descriptionFromFilename(tc.in); got != tc.want {
				t.Errorf("descriptionFromFilename(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMigrationFiles_SortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"2026-01-02-001-b.sql", "2026-01-01-001-a.sql", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := migrationFiles(dir)
	if err != nil {
		t.Fatalf("migrationFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 sql files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "2026-01-01-001-a.sql" {
		t.Errorf("expected oldest migration first, got %s", files[0])
	}
}

func TestMigrationFiles_EmptyDir(t *testing.T) {
	if _, err := migrationFiles(t.TempDir()); err == nil {
		t.Error("expected an error for a directory without migrations")
	}
}
