package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"page2.png", "page10.png", true},
		{"page10.png", "page2.png", false},
		{"a.png", "b.png", true},
		{"scan", "scan1", true},
		{"img1", "img01", true},
		{"img01", "img1", false},
		{"same", "same", false},
		{"x9y2", "x9y10", true},
	}

	for _, tt := range tests {
		if got := NaturalLess(tt.a, tt.b); got != tt.want {
			t.Errorf("NaturalLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestListDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"page10.png", "page2.png", "Page1.jpg", "notes.txt", "doc.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	images := func(path string) bool {
		ext := strings.ToLower(filepath.Ext(path))
		return ext == ".png" || ext == ".jpg"
	}

	paths, err := ListDirectory(dir, images)
	if err != nil {
		t.Fatalf("ListDirectory failed: %v", err)
	}

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	want := []string{"Page1.jpg", "page2.png", "page10.png"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("ListDirectory() = %v, want %v", names, want)
	}

	all, err := ListDirectory(dir, nil)
	if err != nil {
		t.Fatalf("ListDirectory without filter failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 regular files, got %d", len(all))
	}
}

func TestListDirectory_Missing(t *testing.T) {
	if _, err := ListDirectory(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("Expected error for missing directory")
	}
}
