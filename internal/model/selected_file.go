package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EntryIDPrefix is prepended to generated selection IDs
const EntryIDPrefix = "file-"

// SelectedFile is a path chosen by the user plus attributes derived from it.
// Identity is the path; the same path may be chosen more than once.
type SelectedFile struct {
	ID   string   // assigned at selection time, unique per entry
	Path string   // path as chosen
	Name string   // base name shown in the list
	Ext  string   // lower-cased extension including the dot
	Kind FileKind // image or pdf
}

// NewSelectedFile builds a SelectedFile for the given path
func NewSelectedFile(path string) SelectedFile {
	name := filepath.Base(path)
	return SelectedFile{
		ID:   GenerateID(EntryIDPrefix),
		Path: path,
		Name: name,
		Ext:  strings.ToLower(filepath.Ext(name)),
		Kind: KindOf(path),
	}
}

// GenerateID returns a prefixed UUID v7, falling back to a timestamp
func GenerateID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(prefix+"%d", time.Now().UnixNano())
	}
	return prefix + id.String()
}
