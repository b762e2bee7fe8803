package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListDirectory returns the regular files of dir accepted by accept, sorted
// naturally by name so that page2 comes before page10. Subdirectories are not
// descended into.
func ListDirectory(dir string, accept func(path string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if accept != nil && !accept(path) {
			continue
		}
		paths = append(paths, path)
	}

	sort.SliceStable(paths, func(i, j int) bool {
		return NaturalLess(strings.ToLower(filepath.Base(paths[i])), strings.ToLower(filepath.Base(paths[j])))
	})
	return paths, nil
}

// NaturalLess compares strings treating digit runs as numbers:
// "file2" < "file10". Equal numeric values with more leading zeros sort later.
func NaturalLess(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			startA := i
			for i < len(a) && a[i] == '0' {
				i++
			}
			valStartA := i
			for i < len(a) && isDigit(a[i]) {
				i++
			}

			startB := j
			for j < len(b) && b[j] == '0' {
				j++
			}
			valStartB := j
			for j < len(b) && isDigit(b[j]) {
				j++
			}

			valA, valB := a[valStartA:i], b[valStartB:j]
			if len(valA) != len(valB) {
				return len(valA) < len(valB)
			}
			if valA != valB {
				return valA < valB
			}
			if i-startA != j-startB {
				return i-startA < j-startB
			}
			continue
		}

		if a[i] != b[j] {
			return a[i] < b[j]
		}
		i++
		j++
	}
	return len(a)-i < len(b)-j
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
