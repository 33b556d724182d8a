package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindFileCaseInsensitive(t *testing.T) {
	tmpDir := t.TempDir()

	testFiles := []string{
		"Main.mb",
		"HELPER.MB",
		"notes.txt",
	}

	for _, filename := range testFiles {
		path := filepath.Join(tmpDir, filename)
		if err := os.WriteFile(path, []byte("echo hi"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "main.mb.d"), 0755); err != nil {
		t.Fatalf("Failed to create test dir: %v", err)
	}

	tests := []struct {
		name          string
		searchName    string
		shouldFind    bool
		expectedMatch string
	}{
		{
			name:          "exact match",
			searchName:    "Main.mb",
			shouldFind:    true,
			expectedMatch: "Main.mb",
		},
		{
			name:          "lowercase search for mixed case file",
			searchName:    "main.mb",
			shouldFind:    true,
			expectedMatch: "Main.mb",
		},
		{
			name:          "mixed case search for uppercase file",
			searchName:    "Helper.mb",
			shouldFind:    true,
			expectedMatch: "HELPER.MB",
		},
		{
			name:       "directories are ignored",
			searchName: "main.mb.d",
			shouldFind: false,
		},
		{
			name:       "file not found",
			searchName: "nonexistent.mb",
			shouldFind: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := FindFileCaseInsensitive(tmpDir, tt.searchName)

			if tt.shouldFind {
				if err != nil {
					t.Fatalf("Expected to find file, but got error: %v", err)
				}
				if filepath.Base(path) != tt.expectedMatch {
					t.Errorf("Expected filename %s, got %s", tt.expectedMatch, filepath.Base(path))
				}
				if _, err := os.Stat(path); err != nil {
					t.Errorf("Returned path does not exist: %s", path)
				}
			} else {
				if !errors.Is(err, ErrFileNotFound) {
					t.Errorf("Expected ErrFileNotFound, got path %q, err %v", path, err)
				}
			}
		})
	}
}

func TestFindFileCaseInsensitive_ExactMatchWins(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"MAIN.mb", "main.mb"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(""), 0644); err != nil {
			t.Skipf("case-insensitive file system: %v", err)
		}
	}
	entries, _ := os.ReadDir(tmpDir)
	if len(entries) < 2 {
		t.Skip("case-insensitive file system")
	}

	path, err := FindFileCaseInsensitive(tmpDir, "main.mb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "main.mb" {
		t.Errorf("expected exact match main.mb, got %s", filepath.Base(path))
	}
}

func TestFindFileCaseInsensitive_MissingDir(t *testing.T) {
	_, err := FindFileCaseInsensitive(filepath.Join(t.TempDir(), "missing"), "main.mb")
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
