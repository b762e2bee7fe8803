package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "out", "pdfs")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if !DirectoryExists(testDir) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestDirectoryAndFileExists(t *testing.T) {
	tempDir := t.TempDir()
	file := filepath.Join(tempDir, "a.pdf")
	if err := os.WriteFile(file, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		wantDir  bool
		wantFile bool
	}{
		{"directory", tempDir, true, false},
		{"regular file", file, false, true},
		{"missing", filepath.Join(tempDir, "missing"), false, false},
		{"empty path", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DirectoryExists(tt.path); got != tt.wantDir {
				t.Errorf("DirectoryExists(%q) = %v, want %v", tt.path, got, tt.wantDir)
			}
			if got := FileExists(tt.path); got != tt.wantFile {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.wantFile)
			}
		})
	}
}

func TestGetHomeDocumentsDir(t *testing.T) {
	documentsDir, err := GetHomeDocumentsDir()
	if err != nil {
		t.Fatalf("Failed to get documents directory: %v", err)
	}

	if filepath.Base(documentsDir) != "Documents" {
		t.Errorf("Expected directory to end with 'Documents', got: %s", documentsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.pdf")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	err := OpenFileWithDefaultApp("")
	if err == nil || !strings.Contains(err.Error(), "file path is empty") {
		t.Errorf("Expected empty path error, got: %v", err)
	}
}
