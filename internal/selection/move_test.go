package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		rows     []int
		dir      Direction
		toEdge   bool
		expected []string
		moved    []int
		scrollTo int
	}{
		{
			name:     "down by one",
			rows:     []int{2, 3},
			dir:      Down,
			expected: []string{"test1.png", "test2.png", "test5.png", "test3.png", "test4.png", "test6.png", "test7.png"},
			moved:    []int{3, 4},
			scrollTo: 4,
		},
		{
			name:     "to bottom",
			rows:     []int{1, 2, 3, 4},
			dir:      Down,
			toEdge:   true,
			expected: []string{"test1.png", "test6.png", "test7.png", "test2.png", "test3.png", "test4.png", "test5.png"},
			moved:    []int{3, 4, 5, 6},
			scrollTo: 6,
		},
		{
			name:     "up by one",
			rows:     []int{3, 4},
			dir:      Up,
			expected: []string{"test1.png", "test2.png", "test4.png", "test5.png", "test3.png", "test6.png", "test7.png"},
			moved:    []int{2, 3},
			scrollTo: 2,
		},
		{
			name:     "to top",
			rows:     []int{5, 6},
			dir:      Up,
			toEdge:   true,
			expected: []string{"test6.png", "test7.png", "test1.png", "test2.png", "test3.png", "test4.png", "test5.png"},
			moved:    []int{0, 1},
			scrollTo: 0,
		},
		{
			name:     "non-contiguous up keeps relative order",
			rows:     []int{1, 4},
			dir:      Up,
			expected: []string{"test2.png", "test1.png", "test3.png", "test5.png", "test4.png", "test6.png", "test7.png"},
			moved:    []int{0, 3},
			scrollTo: 0,
		},
		{
			name:     "non-contiguous to bottom",
			rows:     []int{0, 3},
			dir:      Down,
			toEdge:   true,
			expected: []string{"test2.png", "test3.png", "test5.png", "test6.png", "test7.png", "test1.png", "test4.png"},
			moved:    []int{5, 6},
			scrollTo: 6,
		},
		{
			name:     "rows given unsorted",
			rows:     []int{4, 3},
			dir:      Up,
			expected: []string{"test1.png", "test2.png", "test4.png", "test5.png", "test3.png", "test6.png", "test7.png"},
			moved:    []int{2, 3},
			scrollTo: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestStore(t)

			result := s.Move(test.rows, test.dir, test.toEdge)

			assert.True(t, result.Moved)
			assert.Equal(t, test.expected, s.Labels())
			assert.Equal(t, test.moved, result.Rows)
			assert.Equal(t, test.scrollTo, result.ScrollTo)
			assert.Equal(t, test.moved, s.SelectedRows())
		})
	}
}

func TestMove_NoopAtBoundary(t *testing.T) {
	tests := []struct {
		name   string
		rows   []int
		dir    Direction
		toEdge bool
	}{
		{"up from top", []int{0, 1}, Up, false},
		{"to top from top", []int{0, 3}, Up, true},
		{"down from bottom", []int{5, 6}, Down, false},
		{"to bottom from bottom", []int{2, 6}, Down, true},
		{"empty selection", nil, Down, false},
		{"out of range only", []int{9}, Up, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestStore(t)
			before := s.Entries()

			result := s.Move(test.rows, test.dir, test.toEdge)

			assert.False(t, result.Moved)
			assert.Equal(t, -1, result.ScrollTo)
			assert.Equal(t, before, s.Entries())
		})
	}
}

func TestMove_DoesNotTouchSelectionSequence(t *testing.T) {
	s := newTestStore(t)
	before := s.Names()

	s.Move([]int{6}, Up, true)

	assert.Equal(t, before, s.Names())
	assert.Equal(t, "test7.png", s.Labels()[0])
}

func TestMoveSelected(t *testing.T) {
	s := newTestStore(t)
	s.Toggle(4)
	s.Toggle(6)

	result := s.MoveSelected(Up, false)

	assert.True(t, result.Moved)
	assert.Equal(t, []string{"test1.png", "test2.png", "test3.png", "test5.png", "test4.png", "test7.png", "test6.png"}, s.Labels())
	assert.Equal(t, []int{3, 5}, s.SelectedRows())

	result = s.MoveSelected(Down, true)
	assert.Equal(t, []string{"test1.png", "test2.png", "test3.png", "test4.png", "test6.png", "test5.png", "test7.png"}, s.Labels())
	assert.Equal(t, []int{5, 6}, result.Rows)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
}
