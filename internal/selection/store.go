package selection

import (
	"log"

	"github.com/ytget/pdf-maker/internal/model"
)

// Entry is one row of the display list
type Entry struct {
	ID    string // ID of the SelectedFile the row was created for
	Label string // file name only, not the full path
}

// Store holds the selection sequence, the display list and the highlighted rows.
// It is not safe for concurrent use; the UI touches it from one goroutine.
type Store struct {
	files    []model.SelectedFile
	display  []Entry
	selected map[string]bool // entry ID -> highlighted
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		files:    make([]model.SelectedFile, 0),
		display:  make([]Entry, 0),
		selected: make(map[string]bool),
	}
}

// Choose replaces the selection with the given paths.
// Paths that are neither images nor PDFs are skipped; the number skipped is returned.
func (s *Store) Choose(paths []string) int {
	s.files = s.files[:0]
	s.display = s.display[:0]
	s.ClearSelection()

	skipped := 0
	for _, path := range paths {
		if !model.IsSupported(path) {
			skipped++
			continue
		}
		s.appendFile(model.NewSelectedFile(path))
	}

	log.Printf("Selection replaced: %d files chosen, %d skipped", len(s.files), skipped)
	return skipped
}

// Add appends paths of the class already chosen.
// With an empty selection it behaves like Choose. Paths of another class are
// rejected and counted in the return value.
func (s *Store) Add(paths []string) int {
	if len(s.files) == 0 {
		return s.Choose(paths)
	}

	accepted := s.AcceptedKind()
	if accepted == model.KindUnknown {
		log.Printf("Add ignored: first chosen file %s has unsupported kind", s.files[0].Name)
		return len(paths)
	}

	rejected := 0
	for _, path := range paths {
		if model.KindOf(path) != accepted {
			rejected++
			continue
		}
		s.appendFile(model.NewSelectedFile(path))
	}

	log.Printf("Added %d files, %d rejected (accepting %s)", len(paths)-rejected, rejected, accepted)
	return rejected
}

// AcceptedKind returns the kind of the first chosen file, which decides both
// the class the add flow accepts and the conversion path. KindUnknown (both
// classes) when nothing is chosen.
func (s *Store) AcceptedKind() model.FileKind {
	if len(s.files) == 0 {
		return model.KindUnknown
	}
	return s.files[0].Kind
}

// Delete removes the given display rows. Every chosen file whose name matches
// a removed label is dropped from the selection sequence as well.
func (s *Store) Delete(rows []int) {
	rows = normalizeRows(rows, len(s.display))
	if len(rows) == 0 {
		return
	}

	names := make(map[string]bool, len(rows))
	// Remove from the back so earlier indices stay valid
	for i := len(rows) - 1; i >= 0; i-- {
		entry := s.display[rows[i]]
		names[entry.Label] = true
		delete(s.selected, entry.ID)
		s.display = append(s.display[:rows[i]], s.display[rows[i]+1:]...)
	}

	kept := s.files[:0]
	for _, file := range s.files {
		if !names[file.Name] {
			kept = append(kept, file)
		}
	}
	s.files = kept

	log.Printf("Deleted %d rows, %d files remain", len(rows), len(s.files))
}

// DeleteSelected removes the highlighted rows
func (s *Store) DeleteSelected() {
	s.Delete(s.SelectedRows())
}

// Reconcile rewrites the selection sequence to follow the display order,
// matching display labels to file names. For each row it takes the first file
// at or after the same index with that name, so same-named files from
// different directories may swap places. Files without a matching row are
// left where the scan leaves them.
func (s *Store) Reconcile() {
	for i := range s.display {
		for j := i; j < len(s.files); j++ {
			if s.display[i].Label == s.files[j].Name {
				if i != j {
					s.files[i], s.files[j] = s.files[j], s.files[i]
				}
				break
			}
		}
	}
}

// OrderedPaths reconciles and returns the paths in display order
func (s *Store) OrderedPaths() []string {
	s.Reconcile()
	paths := make([]string, len(s.files))
	for i, file := range s.files {
		paths[i] = file.Path
	}
	return paths
}

// Len returns the number of chosen files
func (s *Store) Len() int {
	return len(s.files)
}

// DisplayLen returns the number of display rows
func (s *Store) DisplayLen() int {
	return len(s.display)
}

// Files returns a copy of the selection sequence
func (s *Store) Files() []model.SelectedFile {
	return append([]model.SelectedFile(nil), s.files...)
}

// Entries returns a copy of the display list
func (s *Store) Entries() []Entry {
	return append([]Entry(nil), s.display...)
}

// Entry returns the display row at index
func (s *Store) Entry(row int) (Entry, bool) {
	if row < 0 || row >= len(s.display) {
		return Entry{}, false
	}
	return s.display[row], true
}

// Labels returns the display labels in display order
func (s *Store) Labels() []string {
	labels := make([]string, len(s.display))
	for i, entry := range s.display {
		labels[i] = entry.Label
	}
	return labels
}

// Names returns the file names in selection order
func (s *Store) Names() []string {
	names := make([]string, len(s.files))
	for i, file := range s.files {
		names[i] = file.Name
	}
	return names
}

// FirstName returns the name of the first chosen file
func (s *Store) FirstName() string {
	if len(s.files) == 0 {
		return ""
	}
	return s.files[0].Name
}

// IndexOf returns the display row of an entry ID, or -1
func (s *Store) IndexOf(id string) int {
	for i, entry := range s.display {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// FileByID returns the chosen file an entry was created for
func (s *Store) FileByID(id string) (model.SelectedFile, bool) {
	for _, file := range s.files {
		if file.ID == id {
			return file, true
		}
	}
	return model.SelectedFile{}, false
}

func (s *Store) appendFile(file model.SelectedFile) {
	s.files = append(s.files, file)
	s.display = append(s.display, Entry{ID: file.ID, Label: file.Name})
}
