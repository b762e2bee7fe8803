package selection

import "sort"

// Toggle flips the highlight of a display row
func (s *Store) Toggle(row int) {
	entry, ok := s.Entry(row)
	if !ok {
		return
	}
	if s.selected[entry.ID] {
		delete(s.selected, entry.ID)
	} else {
		s.selected[entry.ID] = true
	}
}

// SetSelected highlights or clears a display row
func (s *Store) SetSelected(row int, selected bool) {
	entry, ok := s.Entry(row)
	if !ok {
		return
	}
	if selected {
		s.selected[entry.ID] = true
	} else {
		delete(s.selected, entry.ID)
	}
}

// IsSelected reports whether a display row is highlighted
func (s *Store) IsSelected(row int) bool {
	entry, ok := s.Entry(row)
	return ok && s.selected[entry.ID]
}

// SelectedRows returns highlighted rows in ascending order
func (s *Store) SelectedRows() []int {
	rows := make([]int, 0, len(s.selected))
	for i, entry := range s.display {
		if s.selected[entry.ID] {
			rows = append(rows, i)
		}
	}
	return rows
}

// SelectedCount returns the number of highlighted rows
func (s *Store) SelectedCount() int {
	return len(s.SelectedRows())
}

// SelectAll highlights every row
func (s *Store) SelectAll() {
	for _, entry := range s.display {
		s.selected[entry.ID] = true
	}
}

// ClearSelection removes every highlight
func (s *Store) ClearSelection() {
	s.selected = make(map[string]bool)
}

// normalizeRows drops out-of-range and duplicate rows and sorts the rest
func normalizeRows(rows []int, count int) []int {
	seen := make(map[int]bool, len(rows))
	out := make([]int, 0, len(rows))
	for _, row := range rows {
		if row < 0 || row >= count || seen[row] {
			continue
		}
		seen[row] = true
		out = append(out, row)
	}
	sort.Ints(out)
	return out
}
