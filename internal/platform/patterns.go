package platform

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandPatterns turns command-line arguments into file paths. Arguments
// without glob meta characters pass through untouched; patterns (including **)
// are expanded and each expansion is sorted naturally. Argument order is kept.
func ExpandPatterns(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			paths = append(paths, pattern)
			continue
		}

		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern: %s", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", pattern)
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return NaturalLess(matches[i], matches[j])
		})
		paths = append(paths, matches...)
	}
	return paths, nil
}

func hasMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
