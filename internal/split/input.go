package split

import (
	"fmt"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/nemanja-m/hashsplit/internal/sink"
)

// FindFiles returns the regular files matching the given glob pattern,
// sorted by path. Patterns support doublestar globs (e.g. "data/**/*.tsv").
func FindFiles(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files matched the input pattern: %s", pattern)
	}

	var files []string
	for _, match := range matches {
		info, err := os.Lstat(match)
		if err != nil {
			return nil, err
		}
		if info.Mode().IsRegular() {
			files = append(files, match)
		}
	}
	slices.Sort(files)

	return files, nil
}

// SplitFiles runs Split over each file in sequence against the same sink
// set. Files are processed independently rather than concatenated, so an
// unterminated final line in one file never merges with the first line of
// the next.
func SplitFiles(files []string, sinks *sink.Set, bufferSize ...int) error {
	for _, path := range files {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		if err := Split(file, sinks, bufferSize...); err != nil {
			file.Close()
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}
