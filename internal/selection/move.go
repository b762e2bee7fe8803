package selection

import (
	"sort"
)

// Direction of a move
type Direction int

const (
	Up Direction = iota
	Down
)

// String returns a label for logs
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// MoveResult describes the outcome of a move
type MoveResult struct {
	Moved    bool  // false when the move was a no-op
	Rows     []int // new rows of the moved entries, ascending
	ScrollTo int   // row to keep visible: the leading moved entry, -1 if nothing moved
}

// Move relocates the given display rows one step, or to the edge when toEdge
// is set. Rows are handled leading-first (top-most when moving up, bottom-most
// when moving down) so the moved entries keep their relative order. If the
// leading row already sits at the boundary the list is left untouched.
// Moved entries end up highlighted.
func (s *Store) Move(rows []int, dir Direction, toEdge bool) MoveResult {
	rows = normalizeRows(rows, len(s.display))
	if len(rows) == 0 {
		return MoveResult{ScrollTo: -1}
	}
	if dir == Down {
		sort.Sort(sort.Reverse(sort.IntSlice(rows)))
	}

	count := len(s.display)
	if (dir == Down && rows[0] >= count-1) || (dir == Up && rows[0] <= 0) {
		return MoveResult{ScrollTo: -1}
	}

	movedIDs := make([]string, 0, len(rows))
	for i, row := range rows {
		entry := s.take(row)
		var target int
		switch {
		case !toEdge && dir == Down:
			target = row + 1
		case !toEdge:
			target = row - 1
		case dir == Down:
			target = count - i - 1
		default:
			target = i
		}
		s.insert(target, entry)
		s.selected[entry.ID] = true
		movedIDs = append(movedIDs, entry.ID)
	}

	result := MoveResult{
		Moved:    true,
		Rows:     make([]int, 0, len(movedIDs)),
		ScrollTo: s.IndexOf(movedIDs[0]),
	}
	for _, id := range movedIDs {
		result.Rows = append(result.Rows, s.IndexOf(id))
	}
	sort.Ints(result.Rows)
	return result
}

// MoveSelected moves the highlighted rows
func (s *Store) MoveSelected(dir Direction, toEdge bool) MoveResult {
	return s.Move(s.SelectedRows(), dir, toEdge)
}

func (s *Store) take(row int) Entry {
	entry := s.display[row]
	s.display = append(s.display[:row], s.display[row+1:]...)
	return entry
}

func (s *Store) insert(row int, entry Entry) {
	if row < 0 {
		row = 0
	}
	if row > len(s.display) {
		row = len(s.display)
	}
	s.display = append(s.display, Entry{})
	copy(s.display[row+1:], s.display[row:])
	s.display[row] = entry
}
