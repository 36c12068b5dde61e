package queryset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover finds query-set files under root matching any of patterns and
// none of exclude. Paths are returned joined with root, sorted and unique.
func Discover(root string, patterns, exclude []string) ([]string, error) {
	return DiscoverFS(os.DirFS(root), root, patterns, exclude)
}

// DiscoverFS is Discover over an arbitrary filesystem. Matches are joined
// with prefix.
func DiscoverFS(fsys fs.FS, prefix string, patterns, exclude []string) ([]string, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %s", pattern)
		}
	}

	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] || excluded(match, exclude) {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	sort.Strings(files)
	for i, f := range files {
		files[i] = filepath.Join(prefix, filepath.FromSlash(f))
	}
	return files, nil
}

func excluded(path string, exclude []string) bool {
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}
